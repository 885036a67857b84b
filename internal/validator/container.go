package validator

import (
	"fmt"
	"slices"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/secrets-validator/internal/secrets/domain"
	customValidation "github.com/allisson/secrets-validator/internal/validation"
)

var containerSchema = mustLoadSchema("container.json")

// ContainerValidator validates a container and its secret references.
type ContainerValidator struct {
	base
}

// NewContainerValidator creates a ContainerValidator.
func NewContainerValidator() *ContainerValidator {
	return &ContainerValidator{base: base{name: "Container", schema: containerSchema}}
}

// Validate checks a container document. Reference names and the secret ids
// derived from reference URLs must be unique, and typed containers only accept
// their own reference names.
func (v *ContainerValidator) Validate(doc Document, parentSchema string) (Document, error) {
	schemaName := v.fullName(parentSchema)
	if err := v.assertSchemaIsValid(doc, schemaName); err != nil {
		return nil, err
	}

	refs := asDocuments(doc["secret_refs"])
	if len(refs) == 0 {
		return doc, nil
	}

	names := make(map[string]struct{}, len(refs))
	secretIDs := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		name, _ := ref.GetString("name")
		names[name] = struct{}{}

		secretRef, _ := ref.GetString("secret_ref")
		secretIDs[secretIDFromRef(secretRef)] = struct{}{}
	}

	if err := assertValidity(
		len(names) == len(refs),
		schemaName,
		"Duplicate reference names are not allowed",
		"secret_refs",
	); err != nil {
		return nil, err
	}

	// container id and secret id form the key of a container's secret, so one
	// secret cannot be referenced twice.
	if err := assertValidity(
		len(secretIDs) == len(refs),
		schemaName,
		"Duplicate secret ids are not allowed",
		"secret_refs",
	); err != nil {
		return nil, err
	}

	rawType, _ := doc.GetString("type")
	containerType, err := domain.ParseContainerType(rawType)
	if err != nil {
		return nil, &InvalidDocumentError{Schema: schemaName, Property: "type", Reason: err.Error()}
	}
	if rules, ok := domain.RulesFor(containerType); ok {
		if err := validateReferenceNames(sortedKeys(names), rules, containerType, schemaName); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func validateReferenceNames(
	names []string,
	rules domain.ReferenceRules,
	containerType domain.ContainerType,
	schemaName string,
) error {
	label := typeLabel(containerType)
	if err := validation.Validate(names, customValidation.SubsetOf(rules.Allowed()...)); err != nil {
		return &InvalidDocumentError{
			Schema:   schemaName,
			Property: "secret_refs",
			Reason:   fmt.Sprintf("%s as reference names for %s type", err.Error(), label),
		}
	}
	if err := validation.Validate(names, customValidation.Contains(rules.Required...)); err != nil {
		return &InvalidDocumentError{
			Schema:   schemaName,
			Property: "secret_refs",
			Reason:   fmt.Sprintf("%s for %s type", err.Error(), label),
		}
	}
	return nil
}

// secretIDFromRef returns the last path segment of a secret reference, or the
// second to last when the reference ends with a slash.
func secretIDFromRef(ref string) string {
	segments := strings.Split(ref, "/")
	if strings.HasSuffix(ref, "/") {
		return segments[len(segments)-2]
	}
	return segments[len(segments)-1]
}

func typeLabel(t domain.ContainerType) string {
	if t == domain.ContainerTypeRSA {
		return "RSA"
	}
	return strings.ToUpper(t.String()[:1]) + t.String()[1:]
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
