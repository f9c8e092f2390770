package services

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"challenge-tracker/internal/domain"
	"challenge-tracker/internal/errors"
	"challenge-tracker/internal/tracker"
)

func setupSummaryService(now func() time.Time) SummaryService {
	return NewServiceContainer(now).SummaryService
}

func logDays(t *testing.T, s *tracker.Store, activity string, completed bool, hours string, keys ...string) {
	t.Helper()
	for _, key := range keys {
		require.NoError(t, s.UpsertEntry(activity, key, completed, hours, domain.UnitHours, ""))
	}
}

func TestSummaryService_SummarizeActivity(t *testing.T) {
	s := tracker.New()
	require.NoError(t, s.CreateActivity("Run"))
	logDays(t, s, "Run", true, "1", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02")
	logDays(t, s, "Run", false, "0.5", "2024-03-04")
	logDays(t, s, "Run", true, "", "2024-03-06", "2024-03-07", "2024-03-08")
	require.NoError(t, s.UpsertEntry("Run", "2024-03-09", false, "", domain.UnitHours, "rest"))

	service := setupSummaryService(fixedClock(2024, time.March, 10))
	got, err := service.SummarizeActivity(s, "Run", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	want := &ActivitySummary{
		Activity:       "Run",
		DaysInMonth:    31,
		ElapsedDays:    10,
		LoggedDays:     7,
		CompletedDays:  5,
		TotalHours:     2.5,
		CompletionRate: 0.5,
		CurrentStreak:  0,
		LongestStreak:  3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SummarizeActivity() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryService_CurrentStreak(t *testing.T) {
	s := tracker.New()
	require.NoError(t, s.CreateActivity("Run"))
	logDays(t, s, "Run", true, "", "2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02")

	t.Run("today still open", func(t *testing.T) {
		service := setupSummaryService(fixedClock(2024, time.March, 3))
		got, err := service.SummarizeActivity(s, "Run", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 5, got.CurrentStreak, "streak carries over from February")
		assert.Equal(t, 2, got.LongestStreak, "longest streak only counts this month")
	})

	t.Run("today completed", func(t *testing.T) {
		s := s.Clone()
		logDays(t, s, "Run", true, "", "2024-03-03")
		service := setupSummaryService(fixedClock(2024, time.March, 3))
		got, err := service.SummarizeActivity(s, "Run", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 6, got.CurrentStreak)
	})

	t.Run("yesterday missed", func(t *testing.T) {
		service := setupSummaryService(fixedClock(2024, time.March, 4))
		got, err := service.SummarizeActivity(s, "Run", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 0, got.CurrentStreak)
	})

	t.Run("past month ends on its last day", func(t *testing.T) {
		service := setupSummaryService(fixedClock(2024, time.June, 1))
		got, err := service.SummarizeActivity(s, "Run", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 29, got.ElapsedDays)
		assert.Equal(t, 3, got.CurrentStreak)
		assert.InDelta(t, 3.0/29.0, got.CompletionRate, 1e-9)
	})
}

func TestSummaryService_FutureMonth(t *testing.T) {
	s := tracker.New()
	require.NoError(t, s.CreateActivity("Run"))
	logDays(t, s, "Run", true, "", "2024-05-01")

	service := setupSummaryService(fixedClock(2024, time.March, 10))
	got, err := service.SummarizeActivity(s, "Run", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 0, got.ElapsedDays)
	assert.Equal(t, 0.0, got.CompletionRate)
	assert.Equal(t, 0, got.CurrentStreak)
	assert.Equal(t, 1, got.CompletedDays)
}

func TestSummaryService_UnknownActivity(t *testing.T) {
	service := setupSummaryService(nil)
	_, err := service.SummarizeActivity(tracker.New(), "Swim", time.Now())
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errors.ErrorTypeNotFound))
}

func TestSummaryService_SummarizeMonth(t *testing.T) {
	s := tracker.New()
	require.NoError(t, s.CreateActivity("Run"))
	require.NoError(t, s.CreateActivity("Read"))
	logDays(t, s, "Run", true, "1", "2024-03-01")
	require.NoError(t, s.UpsertEntry("Read", "2024-03-01", false, "90", domain.UnitMinutes, ""))

	service := setupSummaryService(fixedClock(2024, time.March, 1))
	got := service.SummarizeMonth(s, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "March 2024", got.Title)
	require.Len(t, got.Activities, 2)
	assert.Equal(t, "Run", got.Activities[0].Activity)
	assert.Equal(t, "Read", got.Activities[1].Activity)
	assert.Equal(t, 1.0, got.Activities[0].CompletionRate)
	assert.Equal(t, 2.5, got.TotalHours())
}

func TestSummaryService_SummarizeMonth_Empty(t *testing.T) {
	got := setupSummaryService(nil).SummarizeMonth(tracker.New(), time.Now())
	assert.Empty(t, got.Activities)
	assert.Equal(t, 0.0, got.TotalHours())
}
