package validation

import (
	"strings"

	"challenge-tracker/internal/domain"
)

// EntryValidator validates the addressing of a log entry. Amounts are
// never rejected; the store coerces anything unusable to zero.
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{validator: NewValidator()}
}

// ValidateDateKey checks that key names a real day
func (ev *EntryValidator) ValidateDateKey(key string) error {
	if ev.validator.IsValidDateKey(key) {
		return nil
	}
	validationError := NewValidationError()
	if strings.TrimSpace(key) == "" {
		validationError.AddRequiredError("date")
	} else {
		validationError.AddInvalidFormatError("date", key, "YYYY-MM-DD")
	}
	return validationError
}

// ValidateMonth checks a YYYY-MM month selector
func (ev *EntryValidator) ValidateMonth(month string) error {
	if ev.validator.IsValidMonth(month) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidFormatError("month", month, "YYYY-MM")
	return validationError
}

// ParseUnit resolves a unit name. An empty string means hours.
func (ev *EntryValidator) ParseUnit(unit string) (domain.DurationUnit, error) {
	if strings.TrimSpace(unit) == "" {
		return domain.UnitHours, nil
	}
	if u, ok := domain.ParseDurationUnit(unit); ok {
		return u, nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("unit", unit, "must be hours or minutes")
	return "", validationError
}
