package migrations

import (
	"database/sql"
	"fmt"
	"time"
)

func init() {
	RegisterGoMigration(2, Up_000002_normalize_updated_at, Down_000002_normalize_updated_at)
}

// legacyTimestampLayouts are the layouts SQLite's CURRENT_TIMESTAMP and
// hand-edited rows leave in updated_at.
var legacyTimestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02",
}

// Up_000002_normalize_updated_at rewrites every updated_at value to RFC3339
// in UTC so the repository can parse it with a single layout.
func Up_000002_normalize_updated_at(tx *sql.Tx) error {
	type row struct {
		key       string
		updatedAt string
	}
	var rowsToFix []row

	rows, err := tx.Query("SELECT key, updated_at FROM kv_store")
	if err != nil {
		return fmt.Errorf("failed to query kv_store: %w", err)
	}
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.key, &r.updatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan kv_store row: %w", err)
		}
		if _, err := time.Parse(time.RFC3339, r.updatedAt); err != nil {
			rowsToFix = append(rowsToFix, r)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error iterating kv_store: %w", err)
	}
	rows.Close()

	stmt, err := tx.Prepare("UPDATE kv_store SET updated_at = ? WHERE key = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare updated_at statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rowsToFix {
		normalized := normalizeTimestamp(r.updatedAt)
		if _, err := stmt.Exec(normalized, r.key); err != nil {
			return fmt.Errorf("failed to update key %q: %w", r.key, err)
		}
	}

	return nil
}

// Down_000002_normalize_updated_at is a no-op: RFC3339 values remain
// readable by older code.
func Down_000002_normalize_updated_at(tx *sql.Tx) error {
	return nil
}

// normalizeTimestamp converts a legacy timestamp to RFC3339. Values that
// match no known layout are replaced with the Unix epoch so they still parse.
func normalizeTimestamp(s string) string {
	for _, layout := range legacyTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return time.Unix(0, 0).UTC().Format(time.RFC3339)
}
