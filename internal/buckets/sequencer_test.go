package buckets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func collect(s *Sequencer) []Bucket {
	var out []Bucket
	for {
		b, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

// TestDaySequence verifies the day-bucket walk: strictly descending,
// contiguous, first bucket partial, last bucket containing the installation
// instant.
func TestDaySequence(t *testing.T) {
	loc := mustZone(t, "America/Los_Angeles")
	installation := time.Date(2023, 1, 15, 10, 30, 0, 0, loc)
	now := time.Date(2023, 3, 2, 12, 0, 0, 0, loc)

	got := collect(New(Day, now, installation, loc))

	// Jan 15-31 + all of Feb + Mar 1-2.
	require.Len(t, got, 17+28+2)

	assert.Equal(t, "2023-03-02", got[0].Label)
	assert.True(t, got[0].Partial)
	assert.Equal(t, "2023-01-15", got[len(got)-1].Label)

	for i, b := range got {
		y, m, d := b.Start.Date()
		assert.Equal(t, time.Date(y, m, d, 0, 0, 0, 0, loc), b.Start)
		assert.Equal(t, time.Date(y, m, d, 23, 59, 59, 0, loc), b.End)
		if i > 0 {
			assert.False(t, got[i-1].Partial)
			// Contiguous: this bucket's end is one second before the
			// next-newer bucket's start.
			assert.Equal(t, got[i-1].Start, b.End.Add(time.Second))
			assert.True(t, b.Start.Before(got[i-1].Start))
		}
	}
}

// TestDaySequenceDST verifies that wall-clock boundaries stay at
// 00:00:00/23:59:59 local time across daylight-saving transitions, with the
// UTC offset changing sides.
func TestDaySequenceDST(t *testing.T) {
	loc := mustZone(t, "America/Los_Angeles")

	tests := []struct {
		name       string
		now        time.Time
		transition string // label of the transition day
	}{
		{
			name:       "spring forward",
			now:        time.Date(2023, 3, 14, 8, 0, 0, 0, loc),
			transition: "2023-03-12",
		},
		{
			name:       "fall back",
			now:        time.Date(2023, 11, 7, 8, 0, 0, 0, loc),
			transition: "2023-11-05",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			installation := tc.now.AddDate(0, 0, -10)
			got := collect(New(Day, tc.now, installation, loc))

			var transitionSeen bool
			for i, b := range got {
				assert.Equal(t, "00:00:00", b.Start.Format("15:04:05"), b.Label)
				assert.Equal(t, "23:59:59", b.End.Format("15:04:05"), b.Label)
				if i > 0 {
					assert.Equal(t, got[i-1].Start, b.End.Add(time.Second))
				}
				if b.Label == tc.transition {
					transitionSeen = true
					_, startOff := b.Start.Zone()
					_, endOff := b.End.Zone()
					assert.NotEqual(t, startOff, endOff, "offset must change across the transition day")
				}
			}
			assert.True(t, transitionSeen)
		})
	}
}

// TestMonthSequence verifies month-mode boundary arithmetic: the current
// month runs from the first to the end of the current day; each older month
// ends one second before the newer month's start.
func TestMonthSequence(t *testing.T) {
	loc := mustZone(t, "America/Los_Angeles")
	installation := time.Date(2023, 1, 15, 10, 30, 0, 0, loc)
	now := time.Date(2023, 3, 2, 12, 0, 0, 0, loc)

	got := collect(New(Month, now, installation, loc))
	require.Len(t, got, 3)

	assert.Equal(t, "2023-03", got[0].Label)
	assert.True(t, got[0].Partial)
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, loc), got[0].Start)
	assert.Equal(t, time.Date(2023, 3, 2, 23, 59, 59, 0, loc), got[0].End)

	assert.Equal(t, "2023-02", got[1].Label)
	assert.False(t, got[1].Partial)
	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, loc), got[1].Start)
	assert.Equal(t, got[1].End, got[0].Start.Add(-time.Second))

	assert.Equal(t, "2023-01", got[2].Label)
	assert.Equal(t, got[2].End, got[1].Start.Add(-time.Second))
}

// TestMonthSequenceYearBoundary walks across a year boundary.
func TestMonthSequenceYearBoundary(t *testing.T) {
	loc := mustZone(t, "America/New_York")
	installation := time.Date(2022, 11, 20, 0, 0, 0, 0, loc)
	now := time.Date(2023, 1, 5, 9, 0, 0, 0, loc)

	got := collect(New(Month, now, installation, loc))
	require.Len(t, got, 3)
	assert.Equal(t, "2023-01", got[0].Label)
	assert.Equal(t, "2022-12", got[1].Label)
	assert.Equal(t, "2022-11", got[2].Label)
	assert.Equal(t, time.Date(2022, 12, 31, 23, 59, 59, 0, loc), got[1].End)
}

// TestTermination covers installation boundaries landing exactly on and
// inside bucket edges.
func TestTermination(t *testing.T) {
	loc := mustZone(t, "UTC")

	tests := []struct {
		name         string
		installation time.Time
		now          time.Time
		wantFirst    string
		wantLast     string
		wantLen      int
	}{
		{
			name:         "installation at midnight",
			installation: time.Date(2023, 3, 1, 0, 0, 0, 0, loc),
			now:          time.Date(2023, 3, 3, 6, 0, 0, 0, loc),
			wantFirst:    "2023-03-03",
			wantLast:     "2023-03-01",
			wantLen:      3,
		},
		{
			name:         "installation mid-day",
			installation: time.Date(2023, 3, 1, 14, 0, 0, 0, loc),
			now:          time.Date(2023, 3, 3, 6, 0, 0, 0, loc),
			wantFirst:    "2023-03-03",
			wantLast:     "2023-03-01",
			wantLen:      3,
		},
		{
			name:         "same day",
			installation: time.Date(2023, 3, 3, 1, 0, 0, 0, loc),
			now:          time.Date(2023, 3, 3, 6, 0, 0, 0, loc),
			wantFirst:    "2023-03-03",
			wantLast:     "2023-03-03",
			wantLen:      1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := collect(New(Day, tc.now, tc.installation, loc))
			require.Len(t, got, tc.wantLen)
			assert.Equal(t, tc.wantFirst, got[0].Label)
			assert.Equal(t, tc.wantLast, got[len(got)-1].Label)
		})
	}
}
