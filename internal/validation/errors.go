package validation

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is a single rule violation on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface for FieldError
func (fe FieldError) Error() string {
	return fmt.Sprintf("%s %s", fe.Field, fe.Message)
}

// ValidationError collects every FieldError found in one validation pass.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{
		Errors: make([]FieldError, 0),
	}
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// Add records a violation for field.
func (ve *ValidationError) Add(field, message string) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Message: message})
}

// HasErrors returns true if any violation was recorded
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// On returns the messages recorded for field, in the order they were added.
func (ve *ValidationError) On(field string) []string {
	var messages []string
	for _, err := range ve.Errors {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// OrNil returns ve as an error when it holds violations, and nil otherwise.
func (ve *ValidationError) OrNil() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
