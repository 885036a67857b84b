package validator

import (
	"fmt"

	apperrors "github.com/allisson/secrets-validator/internal/errors"
)

// InvalidDocumentError reports a structural schema violation or a failed
// business rule on a document.
type InvalidDocumentError struct {
	Schema   string
	Property string
	Reason   string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf(
		"provided object does not match schema '%s': %s. Invalid property: '%s'",
		e.Schema, e.Reason, e.Property,
	)
}

// Unwrap lets errors.Is match apperrors.ErrInvalidInput.
func (e *InvalidDocumentError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// UnsupportedFieldError reports a well-formed field value the service does not support.
type UnsupportedFieldError struct {
	Field  string
	Schema string
	Reason string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("no support for value set on field '%s' on schema '%s': %s", e.Field, e.Schema, e.Reason)
}

// Unwrap lets errors.Is match apperrors.ErrUnsupportedField.
func (e *UnsupportedFieldError) Unwrap() error {
	return apperrors.ErrUnsupportedField
}

// FeatureNotImplementedError reports a recognized but unimplemented capability.
type FeatureNotImplementedError struct {
	Field  string
	Schema string
	Reason string
}

func (e *FeatureNotImplementedError) Error() string {
	return fmt.Sprintf(
		"feature not implemented for value set on field '%s' on schema '%s': %s",
		e.Field, e.Schema, e.Reason,
	)
}

// Unwrap lets errors.Is match apperrors.ErrNotImplemented.
func (e *FeatureNotImplementedError) Unwrap() error {
	return apperrors.ErrNotImplemented
}

// LimitExceededError reports a secret payload above the configured size. The
// message never includes the limit or the payload.
type LimitExceededError struct {
	Limit int
}

func (e *LimitExceededError) Error() string {
	return "secret payload exceeds the maximum allowed size"
}

// Unwrap lets errors.Is match apperrors.ErrLimitExceeded.
func (e *LimitExceededError) Unwrap() error {
	return apperrors.ErrLimitExceeded
}
