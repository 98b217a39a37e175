package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a single record field. The remote schema is not contractually
// fixed, so values are kept as their textual rendering plus enough type
// information to do arithmetic on numeric fields.
type Value struct {
	text     string
	isString bool
	isNull   bool
}

func StringValue(s string) Value  { return Value{text: s, isString: true} }
func NumberValue(f float64) Value { return Value{text: strconv.FormatFloat(f, 'f', -1, 64)} }

// Cell returns the value as it should appear in an output cell.
func (v Value) Cell() string {
	if v.isNull {
		return ""
	}
	return v.text
}

// Float parses the value as a number.
func (v Value) Float() (float64, error) {
	if v.isString || v.isNull {
		return 0, fmt.Errorf("value %q is not numeric", v.text)
	}
	return strconv.ParseFloat(v.text, 64)
}

// Record is one timestamped observation with a variable set of fields.
// Field order is the order the server sent them in; different records in the
// same response may carry different field sets, so the order matters for
// building a stable output column list.
type Record struct {
	keys   []string
	values map[string]Value
}

// Keys returns the field names in decode order.
func (r *Record) Keys() []string { return r.keys }

func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *Record) Set(key string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// UnmarshalJSON decodes a JSON object preserving key order. encoding/json
// maps lose ordering, so the decoder walks tokens instead. Nested objects
// and arrays are kept as their raw JSON text.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding record: %v", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decoding record: expected object, got %v", tok)
	}

	r.keys = nil
	r.values = make(map[string]Value)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding record key: %v", err)
		}
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding record value for %q: %v", key, err)
		}

		switch v := valTok.(type) {
		case json.Delim:
			// Nested structure: skip to the matching close delimiter and
			// keep the raw text.
			start := dec.InputOffset() - 1
			depth := 1
			for depth > 0 {
				t, err := dec.Token()
				if err != nil {
					return fmt.Errorf("decoding nested value for %q: %v", key, err)
				}
				if d, ok := t.(json.Delim); ok {
					switch d {
					case '{', '[':
						depth++
					case '}', ']':
						depth--
					}
				}
			}
			raw := bytes.TrimSpace(data[start:dec.InputOffset()])
			r.Set(key, Value{text: string(raw), isString: true})
		case string:
			r.Set(key, Value{text: v, isString: true})
		case json.Number:
			r.Set(key, Value{text: v.String()})
		case bool:
			r.Set(key, Value{text: strconv.FormatBool(v), isString: true})
		case nil:
			r.Set(key, Value{isNull: true})
		default:
			return fmt.Errorf("decoding record value for %q: unexpected token %v", key, valTok)
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding record: %v", err)
	}
	return nil
}
