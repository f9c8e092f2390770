// Package export renders the tracker store as a CSV document.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"challenge-tracker/internal/domain"
	"challenge-tracker/internal/tracker"
)

// Header is the first line of every export
const Header = "Date,Activity,Status,Hours,Notes"

// CSV renders every stored entry as one row:
//
//	date,"activity",status,hours,notes
//
// The activity is always wrapped in quotes and written as is. Notes are
// quoted with inner quotes doubled, or left empty. Rows are sorted
// lexicographically and joined with \n with no trailing newline.
func CSV(store *tracker.Store) string {
	var rows []string
	for _, activity := range store.Activities() {
		entries := store.Entries(activity)
		for _, date := range store.DateKeys(activity) {
			rows = append(rows, Row(date, activity, entries[date]))
		}
	}
	sort.Strings(rows)

	return Header + "\n" + strings.Join(rows, "\n")
}

// Row renders a single export line
func Row(date, activity string, entry domain.LogEntry) string {
	return fmt.Sprintf(`%s,"%s",%s,%s,%s`,
		date,
		activity,
		entry.Status(),
		domain.FormatHours(entry.Hours),
		quoteNotes(entry.Notes),
	)
}

func quoteNotes(notes string) string {
	if notes == "" {
		return ""
	}
	return `"` + strings.ReplaceAll(notes, `"`, `""`) + `"`
}

// Filename names an export made at now, using the UTC calendar date
func Filename(now time.Time) string {
	return "tracker_export_" + now.UTC().Format("2006-01-02") + ".csv"
}

// WriteFile writes the export for store into dir and returns its path
func WriteFile(dir string, now time.Time, store *tracker.Store) (string, error) {
	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, []byte(CSV(store)), 0644); err != nil {
		return "", fmt.Errorf("failed to write export %s: %w", path, err)
	}
	return path, nil
}
