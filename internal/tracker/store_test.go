package tracker

import (
	"testing"

	"challenge-tracker/internal/domain"
	"challenge-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateActivity(t *testing.T) {
	s := New()

	require.NoError(t, s.CreateActivity("Read"))
	require.NoError(t, s.CreateActivity("Run"))
	require.NoError(t, s.CreateActivity("read"))

	assert.Equal(t, []string{"Read", "Run", "read"}, s.Activities())
	_, ok := s.GetEntry("Read", "2026-01-01")
	assert.False(t, ok)
	assert.NotNil(t, s.Entries("Read"))
	assert.Empty(t, s.Entries("Read"))
}

func TestStore_CreateActivity_Duplicate(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateActivity("Read"))
	require.NoError(t, s.UpsertEntry("Read", "2026-01-01", true, "0", domain.UnitHours, ""))
	before := s.Clone()

	err := s.CreateActivity("Read")

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAlreadyExists))
	assert.True(t, s.Equal(before), "duplicate create must not change the store")
	assert.Equal(t, []string{"Read"}, s.Activities())
}

func TestStore_DeleteActivity(t *testing.T) {
	s := New()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, s.CreateActivity(name))
	}
	require.NoError(t, s.UpsertEntry("B", "2026-01-01", true, "", domain.UnitHours, ""))

	assert.True(t, s.DeleteActivity("B"))
	assert.False(t, s.DeleteActivity("B"))
	assert.Equal(t, []string{"A", "C"}, s.Activities())
	assert.False(t, s.HasActivity("B"))
	assert.Nil(t, s.Entries("B"))

	// Re-creating starts from scratch and goes to the end.
	require.NoError(t, s.CreateActivity("B"))
	assert.Equal(t, []string{"A", "C", "B"}, s.Activities())
	_, ok := s.GetEntry("B", "2026-01-01")
	assert.False(t, ok)
}

func TestStore_UpsertEntry(t *testing.T) {
	tests := []struct {
		name      string
		completed bool
		raw       string
		unit      domain.DurationUnit
		notes     string
		want      domain.LogEntry
		wantFound bool
	}{
		{
			name:      "minutes are converted to hours",
			raw:       "30",
			unit:      domain.UnitMinutes,
			want:      domain.LogEntry{Hours: 0.5},
			wantFound: true,
		},
		{
			name:      "hours are stored as-is",
			raw:       "2",
			unit:      domain.UnitHours,
			want:      domain.LogEntry{Hours: 2},
			wantFound: true,
		},
		{
			name:      "notes are trimmed",
			completed: true,
			raw:       "0",
			unit:      domain.UnitHours,
			notes:     "  felt good  ",
			want:      domain.LogEntry{Completed: true, Notes: "felt good"},
			wantFound: true,
		},
		{
			name:      "negative input is coerced to zero",
			completed: true,
			raw:       "-4",
			unit:      domain.UnitHours,
			want:      domain.LogEntry{Completed: true},
			wantFound: true,
		},
		{
			name:      "non-numeric input is coerced to zero",
			raw:       "lots",
			unit:      domain.UnitHours,
			notes:     "n",
			want:      domain.LogEntry{Notes: "n"},
			wantFound: true,
		},
		{
			name: "empty triple stores nothing",
			raw:  "0",
			unit: domain.UnitHours,
		},
		{
			name:  "whitespace notes count as empty",
			raw:   "",
			unit:  domain.UnitMinutes,
			notes: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			require.NoError(t, s.CreateActivity("Read"))

			err := s.UpsertEntry("Read", "2026-01-02", tt.completed, tt.raw, tt.unit, tt.notes)
			require.NoError(t, err)

			got, ok := s.GetEntry("Read", "2026-01-02")
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_UpsertEntry_ReplacesWholesale(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateActivity("Read"))
	require.NoError(t, s.UpsertEntry("Read", "2026-01-02", true, "3", domain.UnitHours, "long session"))

	require.NoError(t, s.UpsertEntry("Read", "2026-01-02", false, "15", domain.UnitMinutes, ""))

	got, ok := s.GetEntry("Read", "2026-01-02")
	require.True(t, ok)
	assert.Equal(t, domain.LogEntry{Hours: 0.25}, got)
}

func TestStore_UpsertEntry_ClearRemovesPriorEntry(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateActivity("Read"))
	require.NoError(t, s.UpsertEntry("Read", "2026-01-02", true, "1", domain.UnitHours, "note"))

	require.NoError(t, s.UpsertEntry("Read", "2026-01-02", false, "0", domain.UnitHours, ""))

	_, ok := s.GetEntry("Read", "2026-01-02")
	assert.False(t, ok)
	assert.Empty(t, s.DateKeys("Read"))

	// Clearing a day that was never logged is a no-op.
	require.NoError(t, s.ClearEntry("Read", "2026-01-03"))
}

func TestStore_UpsertEntry_Errors(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateActivity("Read"))

	err := s.UpsertEntry("Write", "2026-01-02", true, "1", domain.UnitHours, "")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = s.UpsertEntry("Read", "2026-02-30", true, "1", domain.UnitHours, "")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))

	assert.Empty(t, s.DateKeys("Read"))
}

func TestStore_DateKeys(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateActivity("Read"))
	for _, key := range []string{"2026-01-10", "2025-12-31", "2026-01-02"} {
		require.NoError(t, s.UpsertEntry("Read", key, true, "", domain.UnitHours, ""))
	}

	assert.Equal(t, []string{"2025-12-31", "2026-01-02", "2026-01-10"}, s.DateKeys("Read"))
	assert.Empty(t, s.DateKeys("missing"))
}

func TestStore_EntriesIsACopy(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateActivity("Read"))
	require.NoError(t, s.UpsertEntry("Read", "2026-01-02", true, "", domain.UnitHours, ""))

	entries := s.Entries("Read")
	delete(entries, "2026-01-02")

	_, ok := s.GetEntry("Read", "2026-01-02")
	assert.True(t, ok)
}

func TestStore_CloneAndEqual(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateActivity("Read"))
	require.NoError(t, s.CreateActivity("Run"))
	require.NoError(t, s.UpsertEntry("Read", "2026-01-02", false, "90", domain.UnitMinutes, "ok"))

	c := s.Clone()
	assert.True(t, s.Equal(c))

	require.NoError(t, c.UpsertEntry("Read", "2026-01-02", true, "90", domain.UnitMinutes, "ok"))
	assert.False(t, s.Equal(c))

	reordered := New()
	require.NoError(t, reordered.CreateActivity("Run"))
	require.NoError(t, reordered.CreateActivity("Read"))
	require.NoError(t, reordered.UpsertEntry("Read", "2026-01-02", false, "90", domain.UnitMinutes, "ok"))
	assert.False(t, s.Equal(reordered))
	assert.False(t, s.Equal(nil))
}
