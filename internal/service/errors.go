package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError reports a missing or malformed request field. Handlers
// render it as a 400 with the field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
