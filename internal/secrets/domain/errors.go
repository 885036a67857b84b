package domain

import (
	"github.com/allisson/secrets-validator/internal/errors"
)

var (
	// ErrInvalidOrderType indicates the order type is not one of key, asymmetric or certificate.
	ErrInvalidOrderType = errors.Wrap(errors.ErrInvalidInput, "invalid order type")

	// ErrInvalidContainerType indicates the container type is not one of generic, rsa or certificate.
	ErrInvalidContainerType = errors.Wrap(errors.ErrInvalidInput, "invalid container type")

	// ErrUnsupportedContentType indicates the payload content type is not supported.
	ErrUnsupportedContentType = errors.Wrap(errors.ErrInvalidInput, "unsupported payload content type")
)
