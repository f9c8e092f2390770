package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"AlreadyExists", ErrorTypeAlreadyExists, "already_exists"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Database", ErrorTypeDatabase, "database"},
		{"MalformedState", ErrorTypeMalformedState, "malformed_state"},
		{"PersistenceWrite", ErrorTypePersistenceWrite, "persistence_write"},
		{"Timeout", ErrorTypeTimeout, "timeout"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name:     "Error without cause",
			appError: &AppError{Type: ErrorTypeNotFound, Message: "activity not found: Read"},
			expected: "not_found: activity not found: Read",
		},
		{
			name:     "Error with cause",
			appError: &AppError{Type: ErrorTypeDatabase, Message: "database operation failed: put", Cause: errors.New("disk full")},
			expected: "database: database operation failed: put (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appError.Error(); got != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Is(t *testing.T) {
	a := NewAlreadyExistsError("activity", "Read")
	b := NewAlreadyExistsError("activity", "Write")
	c := NewNotFoundError("activity", "Read")

	if !errors.Is(a, b) {
		t.Error("errors with the same type and code should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different types should not match")
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation}
	err.WithContext("field", "name")

	value, ok := err.GetContext("field")
	if !ok || value != "name" {
		t.Errorf("GetContext(field) = %v, %v", value, ok)
	}
	if _, ok := err.GetContext("missing"); ok {
		t.Error("GetContext should report missing keys")
	}
}
