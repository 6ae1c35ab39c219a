package service

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrPasswordHashing     = errors.New("password hashing failed")
)

// ValidationError carries the client-safe reason of a rejected input. It
// matches [ErrValidation] with errors.Is.
type ValidationError struct {
	Reason error
}

// NewValidationError wraps reason into a *ValidationError.
func NewValidationError(reason error) error {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Reason.Error()
}

// Message returns the reason without the sentinel prefix.
func (e *ValidationError) Message() string {
	return e.Reason.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}
