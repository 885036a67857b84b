// Package httputil maps validation errors to HTTP status codes and client-facing
// error bodies, so any transport in front of the validators reports them uniformly.
package httputil

import (
	"net/http"

	apperrors "github.com/allisson/secrets-validator/internal/errors"
	"github.com/allisson/secrets-validator/internal/validator"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message,omitempty"`
	Schema   string `json:"schema,omitempty"`
	Property string `json:"property,omitempty"`
	Field    string `json:"field,omitempty"`
}

// MapError maps domain errors to an HTTP status code and an ErrorResponse.
func MapError(err error) (int, ErrorResponse) {
	var statusCode int
	var errorResponse ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusUnprocessableEntity
		errorResponse = ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrUnsupportedField):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Error:   "unsupported_field",
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrNotImplemented):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Error:   "feature_not_implemented",
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrLimitExceeded):
		statusCode = http.StatusRequestEntityTooLarge
		errorResponse = ErrorResponse{
			Error:   "limit_exceeded",
			Message: err.Error(),
		}

	default:
		// For unknown/internal errors, don't expose details to the client
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		}
		return statusCode, errorResponse
	}

	var invalid *validator.InvalidDocumentError
	var unsupported *validator.UnsupportedFieldError
	var notImplemented *validator.FeatureNotImplementedError
	switch {
	case apperrors.As(err, &invalid):
		errorResponse.Schema = invalid.Schema
		errorResponse.Property = invalid.Property
	case apperrors.As(err, &unsupported):
		errorResponse.Schema = unsupported.Schema
		errorResponse.Field = unsupported.Field
	case apperrors.As(err, &notImplemented):
		errorResponse.Schema = notImplemented.Schema
		errorResponse.Field = notImplemented.Field
	}

	return statusCode, errorResponse
}
