// Package dates handles the timezone-naive calendar values used by searches
// and bookings. Every value it returns is a wall-clock time in UTC.
package dates

import (
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	dayLabelLayout = "Mon, Jan 2"
)

var layouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Parse accepts a bare date or a date-time. Offsets are dropped: the wall
// clock as written is kept and re-anchored to UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return naive(t), nil
		}
	}

	return time.Time{}, &time.ParseError{
		Value:   s,
		Message: "unable to parse date string",
	}
}

func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// Day truncates t to midnight of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func At(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

// MinuteOfDay is used for time-of-day window comparisons.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func DayLabel(t time.Time) string {
	return t.Format(dayLabelLayout)
}

func Format(t time.Time) string {
	return t.Format(DateLayout)
}
