// Package tracker holds the in-memory tracker state: activities in
// insertion order, each owning a mapping from date key to log entry.
package tracker

import (
	"sort"

	"challenge-tracker/internal/calendar"
	"challenge-tracker/internal/domain"
	"challenge-tracker/internal/errors"
)

// Store is the aggregate root of the tracker. It is owned by a single
// session and is not safe for concurrent use.
type Store struct {
	order   []string
	entries map[string]map[string]domain.LogEntry
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: make(map[string]map[string]domain.LogEntry)}
}

// CreateActivity adds name with no entries. Duplicate names are rejected
// with an AlreadyExists error and leave the store unchanged.
func (s *Store) CreateActivity(name string) error {
	if _, ok := s.entries[name]; ok {
		return errors.NewAlreadyExistsError("activity", name)
	}
	s.order = append(s.order, name)
	s.entries[name] = make(map[string]domain.LogEntry)
	return nil
}

// DeleteActivity removes name and all of its entries. It reports whether
// the activity existed. Deletion cannot be undone.
func (s *Store) DeleteActivity(name string) bool {
	if _, ok := s.entries[name]; !ok {
		return false
	}
	delete(s.entries, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// HasActivity reports whether name is tracked.
func (s *Store) HasActivity(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// GetEntry looks up the entry for activity on dateKey.
func (s *Store) GetEntry(activity, dateKey string) (domain.LogEntry, bool) {
	entry, ok := s.entries[activity][dateKey]
	return entry, ok
}

// UpsertEntry records a day for activity from raw editor input.
//
// rawAmount is parsed as a float and anything unparsable or negative
// counts as 0. Minutes are converted to hours. When the resulting entry is
// empty any existing entry for the day is removed; otherwise the entry is
// replaced wholesale.
func (s *Store) UpsertEntry(activity, dateKey string, completed bool, rawAmount string, unit domain.DurationUnit, notes string) error {
	hours := domain.ToHours(domain.SanitizeAmount(rawAmount), unit)
	return s.PutEntry(activity, dateKey, domain.NewLogEntry(completed, hours, notes))
}

// PutEntry stores an already-normalized entry, removing the day instead
// when the entry is empty.
func (s *Store) PutEntry(activity, dateKey string, entry domain.LogEntry) error {
	days, ok := s.entries[activity]
	if !ok {
		return errors.NewNotFoundError("activity", activity)
	}
	if !calendar.IsDateKey(dateKey) {
		return errors.NewInvalidInputError("date", dateKey, "expected a calendar date in YYYY-MM-DD form")
	}
	if entry.Hours < 0 {
		entry.Hours = 0
	}
	if entry.IsEmpty() {
		delete(days, dateKey)
		return nil
	}
	days[dateKey] = entry
	return nil
}

// ClearEntry removes the entry for activity on dateKey, if any.
func (s *Store) ClearEntry(activity, dateKey string) error {
	return s.PutEntry(activity, dateKey, domain.LogEntry{})
}

// Activities returns activity names in insertion order.
func (s *Store) Activities() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of activities.
func (s *Store) Len() int {
	return len(s.order)
}

// Entries returns a copy of the entries of activity, or nil when the
// activity does not exist.
func (s *Store) Entries(activity string) map[string]domain.LogEntry {
	days, ok := s.entries[activity]
	if !ok {
		return nil
	}
	out := make(map[string]domain.LogEntry, len(days))
	for k, v := range days {
		out[k] = v
	}
	return out
}

// DateKeys returns the date keys logged for activity in ascending order.
func (s *Store) DateKeys(activity string) []string {
	days := s.entries[activity]
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	c := New()
	for _, name := range s.order {
		c.order = append(c.order, name)
		c.entries[name] = s.Entries(name)
	}
	return c
}

// Equal reports whether both stores hold the same activities, in the same
// order, with the same entries.
func (s *Store) Equal(other *Store) bool {
	if other == nil || len(s.order) != len(other.order) {
		return false
	}
	for i, name := range s.order {
		if other.order[i] != name {
			return false
		}
		a, b := s.entries[name], other.entries[name]
		if len(a) != len(b) {
			return false
		}
		for k, v := range a {
			if w, ok := b[k]; !ok || w != v {
				return false
			}
		}
	}
	return true
}
