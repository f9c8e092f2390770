package sqlite

import "time"

// Record is one row of the key-value table.
type Record struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
