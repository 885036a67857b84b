package validator

import (
	"github.com/allisson/secrets-validator/internal/secrets/domain"
)

var legacyOrderSchema = mustLoadSchema("legacy_order.json")

// LegacyOrderValidator validates the older order shape, which embeds the
// secret to generate under "secret".
type LegacyOrderValidator struct {
	base
	secretValidator *SecretValidator
}

// NewLegacyOrderValidator creates a LegacyOrderValidator.
func NewLegacyOrderValidator(opts Options) *LegacyOrderValidator {
	return &LegacyOrderValidator{
		base:            base{name: "Order", schema: legacyOrderSchema},
		secretValidator: NewSecretValidator(opts),
	}
}

// Validate checks a legacy order document. Only generation of binary secrets
// is supported, so the embedded secret must not carry a payload.
func (v *LegacyOrderValidator) Validate(doc Document, parentSchema string) (Document, error) {
	schemaName := v.fullName(parentSchema)
	if err := v.assertSchemaIsValid(doc, schemaName); err != nil {
		return nil, err
	}

	raw := doc["secret"]
	if err := assertValidity(raw != nil, schemaName, "'secret' attributes are required", "secret"); err != nil {
		return nil, err
	}
	secret, ok := asDocument(raw)
	if !ok {
		if err := v.secretValidator.assertSchemaIsValid(raw, v.secretValidator.fullName(v.name)); err != nil {
			return nil, err
		}
		return nil, &InvalidDocumentError{Schema: schemaName, Property: "secret", Reason: "'secret' must be an object"}
	}

	if _, err := v.secretValidator.Validate(secret, v.name); err != nil {
		return nil, err
	}

	if err := assertValidity(
		!secret.Has("payload"),
		schemaName,
		"'payload' not allowed for secret generation",
		"secret",
	); err != nil {
		return nil, err
	}

	contentType, _ := secret.GetString("payload_content_type")
	if contentType != domain.ContentTypeApplicationOctetStream.String() {
		return nil, &UnsupportedFieldError{
			Field:  "payload_content_type",
			Schema: schemaName,
			Reason: "Only 'application/octet-stream' supported",
		}
	}

	return doc, nil
}
