package services

import (
	"time"

	"challenge-tracker/internal/calendar"
	"challenge-tracker/internal/errors"
	"challenge-tracker/internal/tracker"
)

// summaryServiceImpl implements the SummaryService interface
type summaryServiceImpl struct {
	calendar CalendarService
}

// NewSummaryService creates a new SummaryService instance
func NewSummaryService(cal CalendarService) SummaryService {
	return &summaryServiceImpl{calendar: cal}
}

// SummarizeMonth summarizes every activity, in store order
func (s *summaryServiceImpl) SummarizeMonth(store *tracker.Store, month time.Time) *MonthSummary {
	month = calendar.MonthStart(month)
	summary := &MonthSummary{
		Month:      month,
		Title:      calendar.MonthTitle(month),
		Activities: make([]*ActivitySummary, 0, store.Len()),
	}
	for _, activity := range store.Activities() {
		summary.Activities = append(summary.Activities, s.summarize(store, activity, month))
	}
	return summary
}

// SummarizeActivity summarizes a single activity for month
func (s *summaryServiceImpl) SummarizeActivity(store *tracker.Store, activity string, month time.Time) (*ActivitySummary, error) {
	if !store.HasActivity(activity) {
		return nil, errors.NewNotFoundError("activity", activity)
	}
	return s.summarize(store, activity, calendar.MonthStart(month)), nil
}

func (s *summaryServiceImpl) summarize(store *tracker.Store, activity string, month time.Time) *ActivitySummary {
	keys := calendar.MonthKeys(month)
	elapsed := s.elapsedDays(keys)

	summary := &ActivitySummary{
		Activity:    activity,
		DaysInMonth: len(keys),
		ElapsedDays: elapsed,
	}

	run := 0
	for _, key := range keys {
		entry, ok := store.GetEntry(activity, key)
		if !ok {
			run = 0
			continue
		}

		summary.LoggedDays++
		summary.TotalHours += entry.Hours
		if !entry.Completed {
			run = 0
			continue
		}

		summary.CompletedDays++
		run++
		if run > summary.LongestStreak {
			summary.LongestStreak = run
		}
	}

	if elapsed > 0 {
		summary.CompletionRate = float64(summary.CompletedDays) / float64(elapsed)
		summary.CurrentStreak = s.currentStreak(store, activity, keys[elapsed-1])
	}
	return summary
}

// elapsedDays counts the days of the month up to and including today.
// Past months count in full, future months not at all.
func (s *summaryServiceImpl) elapsedDays(keys []string) int {
	today := s.calendar.Today()
	switch {
	case today > keys[len(keys)-1]:
		return len(keys)
	case today < keys[0]:
		return 0
	}
	for i, key := range keys {
		if key == today {
			return i + 1
		}
	}
	return 0
}

// currentStreak counts consecutive completed days ending at lastKey,
// following the streak back across month boundaries. Today does not break
// a streak until it is over.
func (s *summaryServiceImpl) currentStreak(store *tracker.Store, activity, lastKey string) int {
	day, err := calendar.ParseDateKey(lastKey)
	if err != nil {
		return 0
	}
	if s.calendar.IsToday(lastKey) {
		if entry, ok := store.GetEntry(activity, lastKey); !ok || !entry.Completed {
			day = day.AddDate(0, 0, -1)
		}
	}

	streak := 0
	for {
		entry, ok := store.GetEntry(activity, calendar.DateKey(day))
		if !ok || !entry.Completed {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}
