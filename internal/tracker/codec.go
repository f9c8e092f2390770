package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"challenge-tracker/internal/calendar"
	"challenge-tracker/internal/domain"
)

// MarshalJSON encodes the store as
// {activity: {dateKey: {completed, hours, notes}}} with activities in
// insertion order. Activities without entries are written as {}.
func (s *Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		days, err := json.Marshal(s.entries[name])
		if err != nil {
			return nil, fmt.Errorf("encode activity %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(days)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the persisted shape, keeping the document order of
// activities. Entries under invalid date keys and empty entries are
// dropped and negative hours are clamped, so a decoded store always holds
// the store invariants. A JSON null decodes to an empty store.
func (s *Store) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	fresh := New()
	if tok == nil {
		*s = *fresh
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("tracker data must be a JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		var days map[string]domain.LogEntry
		if err := dec.Decode(&days); err != nil {
			return fmt.Errorf("decode activity %q: %w", name, err)
		}

		if _, seen := fresh.entries[name]; !seen {
			fresh.order = append(fresh.order, name)
		}
		clean := make(map[string]domain.LogEntry, len(days))
		for key, entry := range days {
			if !calendar.IsDateKey(key) {
				continue
			}
			if entry.Hours < 0 || entry.Hours != entry.Hours {
				entry.Hours = 0
			}
			if entry.IsEmpty() {
				continue
			}
			clean[key] = entry
		}
		fresh.entries[name] = clean
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after tracker object")
	}

	*s = *fresh
	return nil
}
