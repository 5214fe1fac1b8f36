package domain

import "errors"

// Domain errors shared by the stores, services and handlers
var (
	ErrNotFound     = errors.New("not found")           // Absent or owned by another user
	ErrConflict     = errors.New("conflict")            // Duplicate unique key
	ErrUnauthorized = errors.New("invalid credentials") // Bad credentials or token
)

// ValidationError describes a rejected input field
type ValidationError struct {
	Field   string // Offending field
	Message string // Human readable reason
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError builds a *ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
