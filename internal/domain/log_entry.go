package domain

import "strings"

// LogEntry is one day's record for one activity.
// Hours is always stored in hours, never negative.
type LogEntry struct {
	Completed bool    `json:"completed"`
	Hours     float64 `json:"hours"`
	Notes     string  `json:"notes"`
}

// NewLogEntry builds an entry from already-converted values. Notes are
// trimmed and negative hours are clamped to zero.
func NewLogEntry(completed bool, hours float64, notes string) LogEntry {
	if hours < 0 || hours != hours {
		hours = 0
	}
	return LogEntry{
		Completed: completed,
		Hours:     hours,
		Notes:     strings.TrimSpace(notes),
	}
}

// IsEmpty reports whether the entry carries no data. Empty entries are
// never stored; absence represents "no data".
func (e LogEntry) IsEmpty() bool {
	return !e.Completed && e.Hours == 0 && e.Notes == ""
}

// Status returns the export label for the entry.
func (e LogEntry) Status() string {
	if e.Completed {
		return "Completed"
	}
	return "In Progress"
}
