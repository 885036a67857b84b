// Package validator implements the request-payload validation engine for the
// secrets API. Each resource type has a Validator that checks a Document against
// a JSON schema, applies cross-field business rules, and normalizes the document
// in place. Validators hold only immutable configuration and are safe for
// concurrent use.
package validator

import (
	"time"

	"github.com/allisson/secrets-validator/internal/secrets/domain"
)

// Validator validates and normalizes one kind of document.
type Validator interface {
	// Name is the display name used in error messages.
	Name() string
	// Schema is the structural schema checked before any business rule.
	Schema() *Schema
	// Validate returns the normalized document or the first failure found.
	// parentSchema is the name of the enclosing schema for nested documents,
	// or "" at top level.
	Validate(doc Document, parentSchema string) (Document, error)
}

// Options configures validators. Zero values select the defaults.
type Options struct {
	// Limit supplies the maximum secret payload size in bytes.
	Limit SizeLimit
	// Now returns the current instant used for expiration checks.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Limit == nil {
		o.Limit = FixedLimit(domain.DefaultMaxSecretBytes)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// base carries the state shared by all validators.
type base struct {
	name   string
	schema *Schema
}

// Name returns the display name of the validator.
func (b *base) Name() string {
	return b.name
}

// Schema returns the structural schema of the validator.
func (b *base) Schema() *Schema {
	return b.schema
}

// fullName returns the schema name used in errors, including the parent when nested.
func (b *base) fullName(parentSchema string) string {
	if parentSchema != "" {
		return b.name + "' within '" + parentSchema
	}
	return b.name
}

// assertSchemaIsValid runs the structural check.
func (b *base) assertSchemaIsValid(value any, schemaName string) error {
	violation, err := b.schema.Check(value)
	if err != nil {
		return &InvalidDocumentError{Schema: schemaName, Reason: err.Error()}
	}
	if violation != nil {
		return &InvalidDocumentError{
			Schema:   schemaName,
			Property: violation.Property(),
			Reason:   violation.Message,
		}
	}
	return nil
}

// assertValidity returns an InvalidDocumentError unless condition holds.
func assertValidity(condition bool, schemaName, reason, property string) error {
	if condition {
		return nil
	}
	return &InvalidDocumentError{Schema: schemaName, Property: property, Reason: reason}
}
