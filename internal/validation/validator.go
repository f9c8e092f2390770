package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"challenge-tracker/internal/calendar"
	"challenge-tracker/internal/config"
	"challenge-tracker/internal/domain"
)

const (
	defaultNameMinLength = 1
	defaultNameMaxLength = 100
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the rune count of s is within the range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidActivityNameLength checks if a name length is within configured limits
func (v *Validator) IsValidActivityNameLength(name string) bool {
	return v.IsValidStringLength(name, v.getNameMinLength(), v.getNameMaxLength())
}

// HasNoControlCharacters rejects names that would break a grid row or a
// CSV line, such as newlines and tabs.
func (v *Validator) HasNoControlCharacters(s string) bool {
	return utf8.ValidString(s) && strings.IndexFunc(s, unicode.IsControl) < 0
}

// IsValidDateKey checks for a real calendar day in YYYY-MM-DD form
func (v *Validator) IsValidDateKey(key string) bool {
	return calendar.IsDateKey(key)
}

// IsValidMonth checks for a YYYY-MM month selector
func (v *Validator) IsValidMonth(month string) bool {
	_, err := calendar.ParseMonth(month)
	return err == nil
}

// IsValidUnit checks for a known duration unit name or short form
func (v *Validator) IsValidUnit(unit string) bool {
	_, ok := domain.ParseDurationUnit(unit)
	return ok
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) getNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.ActivityNameMinLength
	}
	return defaultNameMinLength
}

func (v *Validator) getNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.ActivityNameMaxLength
	}
	return defaultNameMaxLength
}
