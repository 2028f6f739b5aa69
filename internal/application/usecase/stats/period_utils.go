// Package stats contains the financial statistics aggregation engine.
package stats

import (
	"time"
)

// MonthBounds returns the inclusive bounds of the calendar month containing t:
// the first day at 00:00:00 and the last day at 23:59:59.999999999, in t's
// location.
func MonthBounds(t time.Time) (start, end time.Time) {
	loc := t.Location()
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// CurrentMonthWindow returns the DateWindow for the calendar month containing now.
func CurrentMonthWindow(now time.Time) DateWindow {
	start, end := MonthBounds(now)
	return DateWindow{Start: start, End: end}
}

// MonthKey returns the "YYYY-MM" key of the month containing t.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthLabel returns a human-readable label for the month containing t,
// e.g. "Mar 2025".
func MonthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}
