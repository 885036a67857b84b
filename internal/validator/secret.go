package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/allisson/secrets-validator/internal/secrets/domain"
)

var secretSchema = mustLoadSchema("secret.json")

// SecretValidator validates a new secret.
type SecretValidator struct {
	base
	limit SizeLimit
	now   func() time.Time
}

// NewSecretValidator creates a SecretValidator.
func NewSecretValidator(opts Options) *SecretValidator {
	opts = opts.withDefaults()
	return &SecretValidator{
		base:  base{name: "Secret", schema: secretSchema},
		limit: opts.Limit,
		now:   opts.Now,
	}
}

// Validate checks a secret document. The name and payload are trimmed, and a
// blank or missing name or expiration is set to nil. A valid expiration is
// replaced by its UTC time.Time.
func (v *SecretValidator) Validate(doc Document, parentSchema string) (Document, error) {
	schemaName := v.fullName(parentSchema)
	if err := v.assertSchemaIsValid(doc, schemaName); err != nil {
		return nil, err
	}

	if name := v.extractName(doc); name != "" {
		doc["name"] = name
	} else {
		doc["name"] = nil
	}

	expiration, err := v.extractExpiration(doc, schemaName)
	if err != nil {
		return nil, err
	}
	if expiration.IsZero() {
		doc["expiration"] = nil
	} else {
		if err := assertValidity(
			expiration.After(v.now().UTC()),
			schemaName,
			"'expiration' is before current time",
			"expiration",
		); err != nil {
			return nil, err
		}
		doc["expiration"] = expiration
	}

	if doc.Has("payload") {
		if err := v.validateContentParameters(doc, schemaName); err != nil {
			return nil, err
		}

		payload, err := v.extractPayload(doc)
		if err != nil {
			return nil, err
		}
		if err := assertValidity(
			payload != "",
			schemaName,
			"If 'payload' specified, must be non empty",
			"payload",
		); err != nil {
			return nil, err
		}
		doc["payload"] = payload
	} else if doc.Has("payload_content_type") {
		if err := assertValidity(
			parentSchema != "",
			schemaName,
			"payload must be provided when payload_content_type is specified",
			"payload",
		); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (v *SecretValidator) extractName(doc Document) string {
	name, _ := doc.GetString("name")
	return strings.TrimSpace(name)
}

// extractExpiration returns the zero time when no expiration is set. A
// previously normalized time.Time is accepted as is.
func (v *SecretValidator) extractExpiration(doc Document, schemaName string) (time.Time, error) {
	switch raw := doc["expiration"].(type) {
	case time.Time:
		return raw.UTC(), nil
	case string:
		if strings.TrimSpace(raw) == "" {
			return time.Time{}, nil
		}
		expiration, err := ParseISOTime(raw)
		if err != nil {
			return time.Time{}, &InvalidDocumentError{
				Schema:   schemaName,
				Property: "expiration",
				Reason:   "Invalid date for 'expiration'",
			}
		}
		return expiration, nil
	default:
		return time.Time{}, nil
	}
}

// validateContentParameters checks that the content type is supported and that
// the encoding matches it.
func (v *SecretValidator) validateContentParameters(doc Document, schemaName string) error {
	rawType, ok := doc.GetString("payload_content_type")
	if err := assertValidity(
		ok,
		schemaName,
		"If 'payload' is supplied, 'payload_content_type' must also be supplied.",
		"payload_content_type",
	); err != nil {
		return err
	}

	contentType, err := domain.ParseContentType(rawType)
	if err != nil {
		return &InvalidDocumentError{
			Schema:   schemaName,
			Property: "payload_content_type",
			Reason:   fmt.Sprintf("payload_content_type is not one of %v", domain.SupportedContentTypes),
		}
	}

	hasEncoding := doc["payload_content_encoding"] != nil
	encoding, _ := doc.GetString("payload_content_encoding")
	if contentType.IsBinary() && domain.ContentEncoding(encoding) != domain.ContentEncodingBase64 {
		return &InvalidDocumentError{
			Schema:   schemaName,
			Property: "payload_content_encoding",
			Reason: "payload_content_encoding must be specified when payload_content_type is " +
				"application/octet-stream.",
		}
	}
	if contentType.IsPlainText() && hasEncoding {
		return &InvalidDocumentError{
			Schema:   schemaName,
			Property: "payload_content_encoding",
			Reason:   "payload_content_encoding must not be specified when payload_content_type is text/plain",
		}
	}

	return nil
}

// extractPayload trims the payload and enforces the size limit.
func (v *SecretValidator) extractPayload(doc Document) (string, error) {
	payload, _ := doc.GetString("payload")
	payload = strings.TrimSpace(payload)

	limit := v.limit.MaxSecretBytes()
	if SecretTooBig(payload, limit) {
		return "", &LimitExceededError{Limit: limit}
	}
	return payload, nil
}
