package apperrors

import (
	"errors"
	"fmt"
)

// Domain error kinds shared by repositories, services and handlers.
// Handlers translate these to HTTP status codes with errors.Is.

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (duplicate slug,
	// already-consumed token)
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates invalid input data
	ErrValidation = errors.New("validation failed")

	// ErrExpired indicates a token past its expiry. Surfaced to HTTP callers
	// identically to ErrNotFound so the API does not leak which tokens ever
	// existed.
	ErrExpired = errors.New("expired")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// ConflictError creates a conflict error with context
func ConflictError(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}

// ValidationError creates a validation error with context
func ValidationError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrValidation)
}

// ExpiredError creates an expired error with context
func ExpiredError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrExpired)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
