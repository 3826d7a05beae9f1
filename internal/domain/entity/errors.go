package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrInternal indicates an unexpected runtime failure that must not be
	// surfaced to API clients verbatim.
	ErrInternal = errors.New("internal error")

	// ErrInvalidCredentials indicates a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("credenziali non valide")
)

// ValidationError reports a locally detected invalid input. Handlers map it
// to HTTP 400 with the field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NotFoundError reports the absence of a requested entity. Handlers map it
// to HTTP 404 so callers can distinguish "no such article" from an article
// with empty fields.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// UpstreamError wraps a failure returned by the backing data service
// (database or object store). Handlers map it to HTTP 400 and pass the
// upstream message through verbatim.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Op
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
