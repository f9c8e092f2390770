package domain

import (
	"math"
	"strconv"
	"strings"
)

// DurationUnit is the unit a duration was entered or displayed in.
type DurationUnit string

const (
	UnitHours   DurationUnit = "hours"
	UnitMinutes DurationUnit = "minutes"
)

// String returns the unit name
func (u DurationUnit) String() string {
	return string(u)
}

// IsValid reports whether u is one of the known units.
func (u DurationUnit) IsValid() bool {
	return u == UnitHours || u == UnitMinutes
}

// ParseDurationUnit accepts the unit names plus the common short forms.
func ParseDurationUnit(s string) (DurationUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hours", "hour", "h", "hr", "hrs":
		return UnitHours, true
	case "minutes", "minute", "m", "min", "mins":
		return UnitMinutes, true
	default:
		return "", false
	}
}

// SanitizeAmount parses a raw duration amount. Anything that is not a
// finite, non-negative number becomes 0.
func SanitizeAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ToHours converts an amount in unit to hours. Only minutes are scaled;
// every other unit is taken as hours.
func ToHours(amount float64, unit DurationUnit) float64 {
	if unit == UnitMinutes {
		return amount / 60
	}
	return amount
}
