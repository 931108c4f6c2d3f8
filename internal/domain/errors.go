package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// IsValidationError reports whether err is one of the entity validation
// errors, so callers can map it to a client error instead of a server fault.
func IsValidationError(err error) bool {
	var fieldErr *ValidationError
	if errors.As(err, &fieldErr) {
		return true
	}

	for _, target := range []error{
		ErrValidation,
		ErrInvalidID,
		ErrEmptyUserID,
		ErrEmptyEmail,
		ErrInvalidEmail,
		ErrEmptyName,
		ErrNameTooShort,
		ErrPasswordTooShort,
		ErrPasswordTooLong,
		ErrEmptyHashedPassword,
		ErrEmptyTodoID,
		ErrEmptyTodoUserID,
		ErrEmptyTitle,
		ErrTitleTooLong,
		ErrInvalidStatus,
		ErrPriorityOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ValidationError carries a field-level validation failure so the HTTP
// layer can report which input was rejected.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
