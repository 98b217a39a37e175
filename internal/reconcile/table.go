// Package reconcile turns one bucket's records, whose field sets vary from
// record to record, into a stable table ready for persistence.
package reconcile

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"solarsync/internal/models"
)

// ErrMissingSummand marks a record that lacks one of the load_power summand
// fields. Partial arithmetic would silently corrupt the derived column, so
// the whole bucket fails.
var ErrMissingSummand = errors.New("missing summand field")

const (
	timestampColumn = "timestamp"
	loadPowerColumn = "load_power"
	outputLayout    = "2006-01-02 15:04:05"
)

// summandColumns are the inputs of the derived load_power column. They are
// read before exclusion filtering so a deployment can exclude a summand from
// the output without breaking the derivation.
var summandColumns = []string{"solar_power", "battery_power", "grid_power", "generator_power"}

// timestampLayouts are the accepted textual timestamp representations.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Options control the reconciliation of one bucket.
type Options struct {
	Excluded        []string       // denylist of columns dropped from the output
	DeriveLoadPower bool           // power kind only
	Location        *time.Location // zone timestamps are rendered in
}

// Table is the column-stabilized view of one bucket's records.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Reconcile merges the field sets of all records into one ordered column
// list and renders the rows. Column order is first-seen order across the
// whole sequence; a column carried only by later records still makes it into
// the output, with earlier rows rendering empty cells. Row order is input
// order (chronological, per the remote contract).
func Reconcile(records []models.Record, opts Options) (*Table, error) {
	excluded := make(map[string]bool, len(opts.Excluded))
	for _, name := range opts.Excluded {
		excluded[name] = true
	}

	var columns []string
	seen := make(map[string]bool)
	for i := range records {
		for _, key := range records[i].Keys() {
			if seen[key] || excluded[key] {
				continue
			}
			seen[key] = true
			columns = append(columns, key)
		}
	}
	if opts.DeriveLoadPower && !seen[loadPowerColumn] {
		columns = append(columns, loadPowerColumn)
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	rows := make([][]string, 0, len(records))
	for i := range records {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			if col == loadPowerColumn && opts.DeriveLoadPower {
				load, err := loadPower(&records[i])
				if err != nil {
					return nil, fmt.Errorf("record %d: %w", i, err)
				}
				row = append(row, strconv.FormatFloat(load, 'f', -1, 64))
				continue
			}

			v, ok := records[i].Get(col)
			if !ok {
				// Missing optional field: empty cell, not an error.
				row = append(row, "")
				continue
			}
			if col == timestampColumn {
				rendered, err := normalizeTimestamp(v.Cell(), loc)
				if err != nil {
					return nil, fmt.Errorf("record %d: %v", i, err)
				}
				row = append(row, rendered)
				continue
			}
			row = append(row, v.Cell())
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// loadPower sums the four power summands. A missing or non-numeric summand
// fails the bucket.
func loadPower(r *models.Record) (float64, error) {
	var sum float64
	for _, name := range summandColumns {
		v, ok := r.Get(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingSummand, name)
		}
		f, err := v.Float()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrMissingSummand, name, err)
		}
		sum += f
	}
	return sum, nil
}

// normalizeTimestamp re-renders a timestamp in the canonical local format,
// trying the accepted layouts in order.
func normalizeTimestamp(s string, loc *time.Location) (string, error) {
	var parseErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t.In(loc).Format(outputLayout), nil
		}
		parseErr = err
	}
	return "", fmt.Errorf("parsing timestamp %q: %v", s, parseErr)
}
