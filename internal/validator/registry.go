package validator

import (
	apperrors "github.com/allisson/secrets-validator/internal/errors"
)

// Kind names a validator in the registry.
type Kind string

const (
	KindSecret       Kind = "secret"
	KindOrder        Kind = "order"
	KindLegacyOrder  Kind = "legacy-order"
	KindContainer    Kind = "container"
	KindConsumer     Kind = "consumer"
	KindTransportKey Kind = "transport-key"
)

// ErrUnknownKind indicates a validator kind that is not registered.
var ErrUnknownKind = apperrors.Wrap(apperrors.ErrInvalidInput, "unknown validator kind")

var kinds = []Kind{KindSecret, KindOrder, KindLegacyOrder, KindContainer, KindConsumer, KindTransportKey}

// ParseKind converts a raw kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", apperrors.Wrapf(ErrUnknownKind, "%q", s)
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Registry holds one validator per kind.
type Registry struct {
	validators map[Kind]Validator
}

// NewRegistry builds every validator with the given options.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		validators: map[Kind]Validator{
			KindSecret:       NewSecretValidator(opts),
			KindOrder:        NewOrderValidator(opts),
			KindLegacyOrder:  NewLegacyOrderValidator(opts),
			KindContainer:    NewContainerValidator(),
			KindConsumer:     NewConsumerValidator(),
			KindTransportKey: NewTransportKeyValidator(),
		},
	}
}

// Get returns the validator registered for kind.
func (r *Registry) Get(kind Kind) (Validator, error) {
	v, ok := r.validators[kind]
	if !ok {
		return nil, apperrors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	return v, nil
}

// Kinds lists the registered kinds in a stable order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}
