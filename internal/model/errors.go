package model

import "errors"

// ErrNotFound is returned when a record does not exist or is not owned
// by the caller. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned on login when the email is unknown
// or the password does not match. Callers must not be able to tell the
// two cases apart.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports a uniqueness violation on email or username.
type ConflictError struct {
	Message string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthError reports a missing, malformed or expired bearer token.
type AuthError struct {
	Message string
}

func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

func (e *AuthError) Error() string {
	return e.Message
}
