package validator

import (
	"fmt"

	validation "github.com/jellydator/validation"

	"github.com/allisson/secrets-validator/internal/secrets/domain"
	customValidation "github.com/allisson/secrets-validator/internal/validation"
)

var orderSchema = mustLoadSchema("order.json")

// OrderValidator validates a typed order, dispatching on its type to the
// rules for the order's meta.
type OrderValidator struct {
	base
	secretValidator *SecretValidator
}

// NewOrderValidator creates an OrderValidator.
func NewOrderValidator(opts Options) *OrderValidator {
	return &OrderValidator{
		base:            base{name: "Order", schema: orderSchema},
		secretValidator: NewSecretValidator(opts),
	}
}

// Validate checks a typed order document.
func (v *OrderValidator) Validate(doc Document, parentSchema string) (Document, error) {
	schemaName := v.fullName(parentSchema)
	if err := v.assertSchemaIsValid(doc, schemaName); err != nil {
		return nil, err
	}

	rawType, _ := doc.GetString("type")
	orderType, err := domain.ParseOrderType(rawType)
	if err != nil {
		return nil, featureNotImplemented(rawType, schemaName)
	}

	switch orderType {
	case domain.OrderTypeCertificate:
		err = v.validateCertificateMeta(doc, schemaName)
	case domain.OrderTypeAsymmetric:
		err = v.validateAsymmetricMeta(doc, schemaName)
	case domain.OrderTypeKey:
		err = v.validateKeyMeta(doc, schemaName)
	default:
		err = featureNotImplemented(rawType, schemaName)
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func (v *OrderValidator) validateKeyMeta(doc Document, schemaName string) error {
	meta, ok := asDocument(doc["meta"])
	if err := assertValidity(ok, schemaName, "'meta' attributes is required", "meta"); err != nil {
		return err
	}

	// Checked ahead of the secret rules so a payload is always reported against meta.
	if err := assertValidity(
		!meta.Has("payload"),
		schemaName,
		"'payload' not allowed for key type order",
		"meta",
	); err != nil {
		return err
	}

	if _, err := v.secretValidator.Validate(meta, v.name); err != nil {
		return err
	}

	bitLength, _ := toInt(meta["bit_length"])
	if err := validation.Validate(bitLength, customValidation.MultipleOf(8)); err != nil {
		return &UnsupportedFieldError{
			Field:  "bit_length",
			Schema: schemaName,
			Reason: fmt.Sprintf("bit_length %s to generate secret", err.Error()),
		}
	}

	return nil
}

func (v *OrderValidator) validateAsymmetricMeta(doc Document, schemaName string) error {
	_, ok := asDocument(doc["meta"])
	return assertValidity(ok, schemaName, "'meta' attributes is required", "meta")
}

func (v *OrderValidator) validateCertificateMeta(doc Document, schemaName string) error {
	_, ok := asDocument(doc["meta"])
	return assertValidity(ok, schemaName, "'meta' attributes is required", "meta")
}

func featureNotImplemented(orderType, schemaName string) error {
	return &FeatureNotImplementedError{
		Field:  "type",
		Schema: schemaName,
		Reason: fmt.Sprintf("Feature not implemented for '%s' order type", orderType),
	}
}
