package buckets

import "time"

// Unit is the calendar alignment of a bucket sequence.
type Unit int

const (
	Day Unit = iota
	Month
)

// Bucket is one calendar-aligned time window. Start and End are the local
// wall-clock boundaries (00:00:00 and 23:59:59, or first/last day of the
// month) carrying the correct UTC offset for their side of any DST
// transition. The most recent bucket of a sequence is flagged Partial and is
// always re-fetched.
type Bucket struct {
	Start   time.Time
	End     time.Time
	Label   string
	Partial bool
}

// Sequencer walks backward from "now" to the installation boundary,
// producing a strictly descending, contiguous sequence of buckets. The unit
// containing the installation instant is included.
type Sequencer struct {
	u            Unit
	loc          *time.Location
	installation time.Time

	// civil cursor: the wall-clock date of the next bucket to produce
	year  int
	month time.Month
	day   int

	first bool
	now   time.Time
	done  bool
}

// New creates a sequencer. now is captured once by the caller at run start so
// that all bucket boundaries within one run agree.
func New(u Unit, now, installation time.Time, loc *time.Location) *Sequencer {
	local := now.In(loc)
	s := &Sequencer{
		u:            u,
		loc:          loc,
		installation: installation,
		first:        true,
		now:          local,
	}
	s.year, s.month, s.day = local.Date()
	if u == Month {
		s.day = 1
	}
	return s
}

// Next returns the next (older) bucket. The boolean is false once the
// sequence has passed the unit containing the installation instant.
func (s *Sequencer) Next() (Bucket, bool) {
	if s.done {
		return Bucket{}, false
	}

	var b Bucket
	switch s.u {
	case Day:
		b = s.dayBucket()
	case Month:
		b = s.monthBucket()
	}

	if b.End.Before(s.installation) || b.End.Equal(s.installation) {
		s.done = true
		return Bucket{}, false
	}

	b.Partial = s.first
	s.first = false

	// The bucket whose start reaches the installation instant is the last.
	if !b.Start.After(s.installation) {
		s.done = true
	}
	s.retreat()

	return b, true
}

// dayBucket builds the bucket for the cursor's civil date. Constructing both
// boundaries from civil components in the site zone re-localizes across DST
// transitions: the same wall-clock time carries whichever UTC offset applies
// on that date.
func (s *Sequencer) dayBucket() Bucket {
	start := time.Date(s.year, s.month, s.day, 0, 0, 0, 0, s.loc)
	end := time.Date(s.year, s.month, s.day, 23, 59, 59, 0, s.loc)
	return Bucket{Start: start, End: end, Label: start.Format("2006-01-02")}
}

// monthBucket builds the bucket for the cursor's month. The most recent
// month ends at the current day's 23:59:59; older months end one second
// before the following month's first midnight.
func (s *Sequencer) monthBucket() Bucket {
	start := time.Date(s.year, s.month, 1, 0, 0, 0, 0, s.loc)
	var end time.Time
	if s.first {
		y, m, d := s.now.Date()
		end = time.Date(y, m, d, 23, 59, 59, 0, s.loc)
	} else {
		end = time.Date(s.year, s.month+1, 1, 0, 0, 0, 0, s.loc).Add(-time.Second)
	}
	return Bucket{Start: start, End: end, Label: start.Format("2006-01")}
}

func (s *Sequencer) retreat() {
	switch s.u {
	case Day:
		prev := time.Date(s.year, s.month, s.day-1, 0, 0, 0, 0, s.loc)
		s.year, s.month, s.day = prev.Date()
	case Month:
		prev := time.Date(s.year, s.month-1, 1, 0, 0, 0, 0, s.loc)
		s.year, s.month, s.day = prev.Date()
	}
}
