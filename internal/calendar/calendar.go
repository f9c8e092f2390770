// Package calendar holds the pure date helpers used for month navigation
// and for the canonical YYYY-MM-DD date keys.
//
// Months passed as ints are zero-based (January == 0) and rendered
// one-based in date keys.
package calendar

import (
	"fmt"
	"time"
)

// DateKeyLayout is the time layout of a date key.
const DateKeyLayout = "2006-01-02"

// DaysInMonth returns the last day number of the given zero-based month,
// computed as day 0 of the following month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatDateKey renders a zero-padded YYYY-MM-DD key.
func FormatDateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// DateKey returns the key of the calendar day t falls on in its own location.
func DateKey(t time.Time) string {
	return FormatDateKey(t.Year(), int(t.Month())-1, t.Day())
}

// ParseDateKey parses a strict, zero-padded date key.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(DateKeyLayout) != key {
		return time.Time{}, fmt.Errorf("date key %q is not in YYYY-MM-DD form", key)
	}
	return t, nil
}

// IsDateKey reports whether key names a real calendar day.
func IsDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// AddMonths shifts t by delta months. The day of month is not clamped, so
// Jan 31 + 1 rolls over into March like the standard library does.
func AddMonths(t time.Time, delta int) time.Time {
	return t.AddDate(0, delta, 0)
}

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthTitle renders the month header, e.g. "January 2026".
func MonthTitle(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

// ParseMonth parses a YYYY-MM month selector into the first day of that month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("month %q is not in YYYY-MM form", s)
	}
	return t, nil
}

// MonthKeys returns the date keys of every day in t's month, in order.
func MonthKeys(t time.Time) []string {
	year, month := t.Year(), int(t.Month())-1
	n := DaysInMonth(year, month)
	keys := make([]string, n)
	for d := 1; d <= n; d++ {
		keys[d-1] = FormatDateKey(year, month, d)
	}
	return keys
}
