// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. Validators wrap these sentinels in typed
// errors and the API boundary maps them to client-facing status codes.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors shared by every validator.
var (
	// ErrInvalidInput indicates the input document is malformed or breaks a business rule.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedField indicates a field value is well formed but not supported.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrNotImplemented indicates the request addresses a recognized but unimplemented feature.
	ErrNotImplemented = errors.New("feature not implemented")

	// ErrLimitExceeded indicates a size limit was exceeded.
	ErrLimitExceeded = errors.New("limit exceeded")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
