package period

import (
	"fmt"
	"time"
)

// DateLayout is the layout used for --start-date / --end-date.
const DateLayout = "2006-01-02"

// DefaultWindowDays is the length of the default reporting window.
const DefaultWindowDays = 180

// TimeRange represents the reporting window of a run
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DefaultRange returns the window ending at now and starting
// DefaultWindowDays before it.
func DefaultRange(now time.Time) TimeRange {
	return TimeRange{
		From: now.AddDate(0, 0, -DefaultWindowDays),
		To:   now,
	}
}

// Days returns the number of whole days covered by the range
func (r TimeRange) Days() int {
	return int(r.To.Sub(r.From).Hours() / 24)
}

// Reversed reports whether From is after To
func (r TimeRange) Reversed() bool {
	return r.From.After(r.To)
}

// String returns the range as "YYYY-MM-DD to YYYY-MM-DD"
func (r TimeRange) String() string {
	return fmt.Sprintf("%s to %s", r.From.Format(DateLayout), r.To.Format(DateLayout))
}
