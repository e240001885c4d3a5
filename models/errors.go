package models

import "errors"

// Sentinel errors forming the application error taxonomy. Controllers map
// these to HTTP status codes; everything else is treated as a storage error.
var (
	// ErrInvalidCredentials is returned on login or password-change attempts
	// with a wrong username or password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWeakPassword is returned when a new password is shorter than the minimum.
	ErrWeakPassword = errors.New("password must contain at least 6 characters")

	// ErrNotFound is returned when a record or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a lookup value name already exists.
	ErrDuplicateName = errors.New("name already exists")

	// ErrMissingHeader is returned when a CSV import is missing a required
	// header; the whole import is rejected.
	ErrMissingHeader = errors.New("missing header")
)

// ValidationError reports one or more invalid request fields.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	msg := e.Messages[0]
	for _, m := range e.Messages[1:] {
		msg += "; " + m
	}
	return msg
}

// NewValidationError builds a ValidationError from field messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
