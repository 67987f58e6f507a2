package models

import (
	"errors"
	"fmt"
)

// The error taxonomy the transport layer maps to response codes:
// ValidationError → 400, NotFoundError → 404, UpstreamError → 500.
// None of these are retried anywhere in the core.

// ValidationError marks malformed caller input: bad filter values, an unknown
// source name, or an invalid holding record.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a holding id that does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("holding %q not found", e.ID)
}

// UpstreamError marks a portfolio store or price oracle that was unreachable
// or answered with a non-success status. It is fatal to the request that
// depends on it: an unreachable source is never treated as an empty one.
type UpstreamError struct {
	Service    string // "price" or the source name
	StatusCode int    // 0 when the call never completed
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: API response code %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is caller error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a missing-holding error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// AsUpstream extracts an UpstreamError if err carries one.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
