package view

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

func march2024() time.Time {
	return time.Date(2024, time.March, 17, 15, 4, 0, 0, time.UTC)
}

func newStore(t *testing.T, activities ...string) *tracker.Store {
	t.Helper()
	s := tracker.New()
	for _, a := range activities {
		require.NoError(t, s.CreateActivity(a))
	}
	return s
}

func TestProject(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.LogEntry
		ok    bool
		want  domain.CellState
	}{
		{"absent", domain.LogEntry{}, false, domain.CellState{Kind: domain.CellEmpty}},
		{"completed", domain.LogEntry{Completed: true}, true, domain.CellState{Kind: domain.CellCompleted}},
		{"completed dominates hours", domain.LogEntry{Completed: true, Hours: 2}, true, domain.CellState{Kind: domain.CellCompleted}},
		{"partial", domain.LogEntry{Hours: 0.5}, true, domain.CellState{Kind: domain.CellPartial, Hours: 0.5}},
		{"notes only", domain.LogEntry{Notes: "rest day"}, true, domain.CellState{Kind: domain.CellEmpty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project(tt.entry, tt.ok))
		})
	}
}

func TestMonthGrid(t *testing.T) {
	s := newStore(t, "Run", "Read")
	require.NoError(t, s.UpsertEntry("Run", "2024-03-05", true, "1.5", domain.UnitHours, ""))
	require.NoError(t, s.UpsertEntry("Read", "2024-03-31", false, "45", domain.UnitMinutes, ""))
	require.NoError(t, s.UpsertEntry("Read", "2024-04-01", true, "", domain.UnitHours, ""))

	grid := MonthGrid(s, march2024())

	assert.Equal(t, "March 2024", grid.Title)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), grid.Month)
	require.Len(t, grid.Days, 31)
	assert.Equal(t, 1, grid.Days[0])
	assert.Equal(t, 31, grid.Days[30])

	require.Len(t, grid.Rows, 2)
	assert.Equal(t, "Run", grid.Rows[0].Activity)
	assert.Equal(t, "Read", grid.Rows[1].Activity)

	run := grid.Rows[0].Cells
	require.Len(t, run, 31)
	assert.Equal(t, Cell{Day: 5, DateKey: "2024-03-05", State: domain.CellState{Kind: domain.CellCompleted}}, run[4])
	assert.Equal(t, domain.CellEmpty, run[5].State.Kind)

	read := grid.Rows[1].Cells
	assert.Equal(t, domain.CellState{Kind: domain.CellPartial, Hours: 0.75}, read[30].State)
	for _, c := range read[:30] {
		assert.Equal(t, domain.CellEmpty, c.State.Kind, "day %d", c.Day)
	}
}

func TestMonthGrid_NoActivities(t *testing.T) {
	grid := MonthGrid(tracker.New(), time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "February 2023", grid.Title)
	assert.Len(t, grid.Days, 28)
	assert.Empty(t, grid.Rows)
}

func TestMonthGrid_LeapFebruary(t *testing.T) {
	grid := MonthGrid(newStore(t, "Run"), time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	require.Len(t, grid.Rows[0].Cells, 29)
	assert.Equal(t, "2024-02-29", grid.Rows[0].Cells[28].DateKey)
}

func TestActivityCalendar(t *testing.T) {
	s := newStore(t, "Run")
	require.NoError(t, s.UpsertEntry("Run", "2024-03-01", true, "", domain.UnitHours, ""))
	require.NoError(t, s.UpsertEntry("Run", "2024-03-02", false, "2", domain.UnitHours, ""))
	require.NoError(t, s.UpsertEntry("Run", "2024-03-03", false, "", domain.UnitHours, "sore legs"))

	cal, err := ActivityCalendar(s, "Run", march2024())
	require.NoError(t, err)

	want := []CalendarDay{
		{Cell: Cell{Day: 1, DateKey: "2024-03-01", State: domain.CellState{Kind: domain.CellCompleted}}, HasData: true},
		{Cell: Cell{Day: 2, DateKey: "2024-03-02", State: domain.CellState{Kind: domain.CellPartial, Hours: 2}}, HasData: true},
		{Cell: Cell{Day: 3, DateKey: "2024-03-03", State: domain.CellState{Kind: domain.CellEmpty}}, HasData: true},
		{Cell: Cell{Day: 4, DateKey: "2024-03-04", State: domain.CellState{Kind: domain.CellEmpty}}, HasData: false},
	}
	if diff := cmp.Diff(want, cal.Days[:4]); diff != "" {
		t.Errorf("ActivityCalendar() days mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, cal.Days, 31)
	assert.Equal(t, "Run", cal.Activity)
	assert.Equal(t, "March 2024", cal.Title)
}

func TestActivityCalendar_UnknownActivity(t *testing.T) {
	_, err := ActivityCalendar(tracker.New(), "Swim", march2024())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestMonthGrid_IsPure(t *testing.T) {
	s := newStore(t, "Run")
	require.NoError(t, s.UpsertEntry("Run", "2024-03-05", true, "1", domain.UnitHours, ""))
	before := s.Clone()

	first := MonthGrid(s, march2024())
	second := MonthGrid(s, march2024())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("MonthGrid() not deterministic (-first +second):\n%s", diff)
	}
	assert.True(t, before.Equal(s))
}
