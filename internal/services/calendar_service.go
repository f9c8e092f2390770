package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"challenge-tracker/internal/calendar"
	"challenge-tracker/internal/errors"
)

// calendarServiceImpl implements the CalendarService interface
type calendarServiceImpl struct {
	now func() time.Time
}

// NewCalendarService creates a CalendarService reading the clock from now
func NewCalendarService(now func() time.Time) CalendarService {
	if now == nil {
		now = time.Now
	}
	return &calendarServiceImpl{now: now}
}

// ResolveMonth picks the month to display. An empty month means the
// current date; offset then moves by whole months using calendar rollover.
func (c *calendarServiceImpl) ResolveMonth(month string, offset int) (time.Time, error) {
	viewed := c.now()
	if month != "" {
		parsed, err := calendar.ParseMonth(month)
		if err != nil {
			return time.Time{}, errors.NewInvalidInputError("month", month, "expected YYYY-MM")
		}
		viewed = parsed
	}
	return calendar.MonthStart(calendar.AddMonths(viewed, offset)), nil
}

// CurrentMonth returns the first day of the current month
func (c *calendarServiceImpl) CurrentMonth() time.Time {
	return calendar.MonthStart(c.now())
}

// ResolveDateKey turns a day argument into a date key. It accepts an
// explicit YYYY-MM-DD key, "today", "yesterday" or nothing (today).
func (c *calendarServiceImpl) ResolveDateKey(arg string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return c.Today(), nil
	case "yesterday":
		return calendar.DateKey(c.now().AddDate(0, 0, -1)), nil
	}
	if !calendar.IsDateKey(arg) {
		return "", errors.NewInvalidInputError("date", arg, "expected YYYY-MM-DD, today or yesterday")
	}
	return arg, nil
}

// Today returns the date key of the current local day
func (c *calendarServiceImpl) Today() string {
	return calendar.DateKey(c.now())
}

// IsToday checks if dateKey is the current local day
func (c *calendarServiceImpl) IsToday(dateKey string) bool {
	return dateKey == c.Today()
}

// FormatHours formats an hour amount into a human-readable string
func (c *calendarServiceImpl) FormatHours(hours float64) string {
	if hours <= 0 || math.IsNaN(hours) {
		return "0m"
	}

	total := int(math.Round(hours * 60))
	h, m := total/60, total%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
