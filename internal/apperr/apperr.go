package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure categories every operation reports.
// Handlers map these to HTTP statuses; services and repositories return
// them wrapped with fmt.Errorf("...: %w", ...) so errors.Is still matches.
var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail means registration hit an existing email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password. The two cases must stay indistinguishable to the
	// caller to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated means no credential was presented.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means a credential was presented but failed
	// verification, expired, or lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports one invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level failures for one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return (&e[0]).Error()
	}
	return fmt.Sprintf("validation failed on %d fields", len(e))
}

// StorageError wraps an underlying store failure. The wrapped error is
// logged internally; callers only ever see the generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError unless it already carries one of
// the app-level categories, which must pass through untouched.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrInvalidCredentials) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsValidation reports whether err carries field-level validation detail.
func IsValidation(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{*single}, true
	}
	return nil, false
}
