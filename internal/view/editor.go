package view

import (
	"math"

	"challenge-tracker/internal/domain"
	"challenge-tracker/internal/tracker"
)

// Editor is the pre-filled form for one cell
type Editor struct {
	Selection
	Exists    bool
	Completed bool
	Amount    float64
	Unit      domain.DurationUnit
	Notes     string
}

// DisplayDuration picks the unit a stored duration is shown in. Durations
// strictly between zero and one hour are shown in whole minutes; anything
// else, zero included, is shown in hours.
func DisplayDuration(hours float64) (float64, domain.DurationUnit) {
	if hours > 0 && hours < 1 {
		return math.Round(hours * 60), domain.UnitMinutes
	}
	return hours, domain.UnitHours
}

// EditorFor opens an editor on activity/dateKey, pre-filled from the
// stored entry when there is one.
func EditorFor(store *tracker.Store, activity, dateKey string) Editor {
	entry, ok := store.GetEntry(activity, dateKey)
	amount, unit := DisplayDuration(entry.Hours)
	return Editor{
		Selection: Selection{Activity: activity, DateKey: dateKey},
		Exists:    ok,
		Completed: entry.Completed,
		Amount:    amount,
		Unit:      unit,
		Notes:     entry.Notes,
	}
}
