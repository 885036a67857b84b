// Package testutil provides fixtures shared by tests that drive validators
// through the use case and CLI layers.
//
// Every fixture returns a fresh document, so tests may mutate the result:
//
//	doc := testutil.RSAContainerDocument()
//	delete(doc, "secret_refs")
package testutil

import (
	"io"
	"log/slog"

	"github.com/allisson/secrets-validator/internal/validator"
)

// NewDiscardLogger returns a logger that drops every record.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRegistry returns a registry with the default size limit and clock.
func NewRegistry() *validator.Registry {
	return validator.NewRegistry(validator.Options{})
}

// SecretDocument returns a valid plain text secret.
func SecretDocument() validator.Document {
	return validator.Document{
		"name":                 "db-password",
		"algorithm":            "aes",
		"payload":              "not-encrypted",
		"payload_content_type": "text/plain",
	}
}

// KeyOrderDocument returns a valid symmetric key order.
func KeyOrderDocument() validator.Document {
	return validator.Document{
		"type": "key",
		"meta": map[string]any{
			"name":       "order-key",
			"algorithm":  "aes",
			"bit_length": 256,
			"mode":       "cbc",
		},
	}
}

// RSAContainerDocument returns a valid RSA container.
func RSAContainerDocument() validator.Document {
	return validator.Document{
		"type": "rsa",
		"name": "rsa-pair",
		"secret_refs": []any{
			map[string]any{"name": "public_key", "secret_ref": "http://localhost:9311/v1/secrets/1"},
			map[string]any{"name": "private_key", "secret_ref": "http://localhost:9311/v1/secrets/2"},
		},
	}
}

// ConsumerDocument returns a valid container consumer.
func ConsumerDocument() validator.Document {
	return validator.Document{"name": "lbaas", "URL": "http://lbaas.example.com/lb/1"}
}

// TransportKeyDocument returns a valid transport key.
func TransportKeyDocument() validator.Document {
	return validator.Document{"plugin_name": "kmip", "transport_key": "-----BEGIN PUBLIC KEY-----"}
}
