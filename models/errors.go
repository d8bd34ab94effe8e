package models

import "errors"

// ErrNotFound is returned when no report exists for the requested id.
var ErrNotFound = errors.New("report not found")

// ValidationError describes the first field of a payload that failed validation.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
