package validator

import (
	"strings"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/secrets-validator/internal/validation"
)

var transportKeySchema = mustLoadSchema("transport_key.json")

// TransportKeyValidator validates a new transport key.
type TransportKeyValidator struct {
	base
}

// NewTransportKeyValidator creates a TransportKeyValidator.
func NewTransportKeyValidator() *TransportKeyValidator {
	return &TransportKeyValidator{base: base{name: "Transport Key", schema: transportKeySchema}}
}

// Validate requires non-blank plugin_name and transport_key and stores both trimmed.
func (v *TransportKeyValidator) Validate(doc Document, parentSchema string) (Document, error) {
	schemaName := v.fullName(parentSchema)
	if err := v.assertSchemaIsValid(doc, schemaName); err != nil {
		return nil, err
	}

	for _, field := range []string{"plugin_name", "transport_key"} {
		value, _ := doc.GetString(field)
		if err := validation.Validate(value, validation.Required, customValidation.NotBlank); err != nil {
			return nil, &InvalidDocumentError{
				Schema:   schemaName,
				Property: field,
				Reason:   field + " must be provided",
			}
		}
		doc[field] = strings.TrimSpace(value)
	}

	return doc, nil
}
