package validation

import "challenge-tracker/internal/config"

// ActivityValidator validates activity names before they reach the store
type ActivityValidator struct {
	validator *Validator
}

// NewActivityValidator creates a validator using the default name limits
func NewActivityValidator() *ActivityValidator {
	return &ActivityValidator{validator: NewValidator()}
}

// NewActivityValidatorWithConfig creates a validator using configured name limits
func NewActivityValidatorWithConfig(cfg *config.Config) *ActivityValidator {
	return &ActivityValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateActivityName validates a name for creation. Surrounding
// whitespace is ignored; case is significant.
func (av *ActivityValidator) ValidateActivityName(name string) error {
	validationError := NewValidationError()

	trimmed := av.validator.TrimAndValidateString(name)
	if !av.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("activity_name")
		return validationError
	}

	if !av.validator.IsValidActivityNameLength(trimmed) {
		validationError.AddInvalidLengthError("activity_name", trimmed,
			av.validator.getNameMinLength(), av.validator.getNameMaxLength())
	}

	if !av.validator.HasNoControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError("activity_name", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidActivityName returns the trimmed name if valid
func (av *ActivityValidator) GetValidActivityName(name string) (string, error) {
	if err := av.ValidateActivityName(name); err != nil {
		return "", err
	}
	return av.validator.TrimAndValidateString(name), nil
}
