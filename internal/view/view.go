// Package view derives what the shell draws from the tracker store: cell
// states, the month grid, the per-activity calendar and the editor form.
// Everything here is a pure function of the store and a month.
package view

import (
	"time"

	"challenge-tracker/internal/calendar"
	"challenge-tracker/internal/domain"
	"challenge-tracker/internal/errors"
	"challenge-tracker/internal/tracker"
)

// Selection identifies the cell an editor is open on. It is never persisted.
type Selection struct {
	Activity string
	DateKey  string
}

// Cell is one day of one activity
type Cell struct {
	Day     int
	DateKey string
	State   domain.CellState
}

// Row is one activity across a month
type Row struct {
	Activity string
	Cells    []Cell
}

// Grid is the activities × days matrix of a month
type Grid struct {
	Month time.Time
	Title string
	Days  []int
	Rows  []Row
}

// CalendarDay is a day in the single-activity calendar. HasData is set for
// any stored entry, including notes-only ones that render as empty cells.
type CalendarDay struct {
	Cell
	HasData bool
}

// Calendar is the month view of a single activity
type Calendar struct {
	Activity string
	Month    time.Time
	Title    string
	Days     []CalendarDay
}

// Project maps a lookup result onto its cell state. Completion dominates
// hours; entries with neither render empty.
func Project(entry domain.LogEntry, ok bool) domain.CellState {
	switch {
	case !ok:
		return domain.CellState{Kind: domain.CellEmpty}
	case entry.Completed:
		return domain.CellState{Kind: domain.CellCompleted}
	case entry.Hours > 0:
		return domain.CellState{Kind: domain.CellPartial, Hours: entry.Hours}
	default:
		return domain.CellState{Kind: domain.CellEmpty}
	}
}

// MonthGrid projects every activity, in store order, across month
func MonthGrid(store *tracker.Store, month time.Time) Grid {
	month = calendar.MonthStart(month)
	keys := calendar.MonthKeys(month)

	grid := Grid{
		Month: month,
		Title: calendar.MonthTitle(month),
		Days:  make([]int, len(keys)),
	}
	for i := range keys {
		grid.Days[i] = i + 1
	}

	for _, activity := range store.Activities() {
		row := Row{Activity: activity, Cells: make([]Cell, len(keys))}
		for i, key := range keys {
			row.Cells[i] = Cell{
				Day:     i + 1,
				DateKey: key,
				State:   Project(store.GetEntry(activity, key)),
			}
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// ActivityCalendar projects a single activity across month
func ActivityCalendar(store *tracker.Store, activity string, month time.Time) (Calendar, error) {
	if !store.HasActivity(activity) {
		return Calendar{}, errors.NewNotFoundError("activity", activity)
	}

	month = calendar.MonthStart(month)
	keys := calendar.MonthKeys(month)
	cal := Calendar{
		Activity: activity,
		Month:    month,
		Title:    calendar.MonthTitle(month),
		Days:     make([]CalendarDay, len(keys)),
	}
	for i, key := range keys {
		entry, ok := store.GetEntry(activity, key)
		cal.Days[i] = CalendarDay{
			Cell:    Cell{Day: i + 1, DateKey: key, State: Project(entry, ok)},
			HasData: ok,
		}
	}
	return cal, nil
}
