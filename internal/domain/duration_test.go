package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"30", 30},
		{" 1.5 ", 1.5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-2", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e2", 100},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeAmount(tt.raw))
		})
	}
}

func TestToHours(t *testing.T) {
	assert.Equal(t, 0.5, ToHours(30, UnitMinutes))
	assert.Equal(t, 2.0, ToHours(2, UnitHours))
	assert.Equal(t, 2.0, ToHours(2, DurationUnit("fortnights")))
}

func TestParseDurationUnit(t *testing.T) {
	tests := []struct {
		in     string
		want   DurationUnit
		wantOK bool
	}{
		{"hours", UnitHours, true},
		{"H", UnitHours, true},
		{"minutes", UnitMinutes, true},
		{" min ", UnitMinutes, true},
		{"days", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDurationUnit(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
