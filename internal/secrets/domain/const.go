// Package domain defines the closed enumerations that make up the wire contract of
// the secrets API: order types, container types, payload content types and
// encodings, and the reference names allowed inside typed containers.
package domain

import (
	"strings"
)

// DefaultMaxSecretBytes is the payload size limit used when none is configured.
const DefaultMaxSecretBytes = 10000

// OrderType identifies what a typed order asks the service to generate.
type OrderType string

const (
	OrderTypeKey         OrderType = "key"
	OrderTypeAsymmetric  OrderType = "asymmetric"
	OrderTypeCertificate OrderType = "certificate"
)

// ParseOrderType converts a raw value into an OrderType, ignoring case.
func ParseOrderType(s string) (OrderType, error) {
	t := OrderType(strings.ToLower(s))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks if the order type is valid.
func (t OrderType) Validate() error {
	switch t {
	case OrderTypeKey, OrderTypeAsymmetric, OrderTypeCertificate:
		return nil
	default:
		return ErrInvalidOrderType
	}
}

// String returns the string representation of the order type.
func (t OrderType) String() string {
	return string(t)
}

// ContainerType identifies the shape of a container's secret references.
type ContainerType string

const (
	ContainerTypeGeneric     ContainerType = "generic"
	ContainerTypeRSA         ContainerType = "rsa"
	ContainerTypeCertificate ContainerType = "certificate"
)

// ParseContainerType converts a raw value into a ContainerType. Matching is exact.
func ParseContainerType(s string) (ContainerType, error) {
	t := ContainerType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks if the container type is valid.
func (t ContainerType) Validate() error {
	switch t {
	case ContainerTypeGeneric, ContainerTypeRSA, ContainerTypeCertificate:
		return nil
	default:
		return ErrInvalidContainerType
	}
}

// String returns the string representation of the container type.
func (t ContainerType) String() string {
	return string(t)
}

// ContentType is a supported payload mime type.
type ContentType string

const (
	ContentTypeTextPlain              ContentType = "text/plain"
	ContentTypeTextPlainUTF8          ContentType = "text/plain;charset=utf-8"
	ContentTypeTextPlainUTF8Spaced    ContentType = "text/plain; charset=utf-8"
	ContentTypeApplicationOctetStream ContentType = "application/octet-stream"
)

// SupportedContentTypes lists every accepted payload content type.
var SupportedContentTypes = []ContentType{
	ContentTypeTextPlain,
	ContentTypeTextPlainUTF8,
	ContentTypeTextPlainUTF8Spaced,
	ContentTypeApplicationOctetStream,
}

// ParseContentType converts a raw value into a ContentType, ignoring case.
func ParseContentType(s string) (ContentType, error) {
	ct := ContentType(strings.ToLower(s))
	for _, supported := range SupportedContentTypes {
		if ct == supported {
			return ct, nil
		}
	}
	return "", ErrUnsupportedContentType
}

// IsPlainText reports whether the content type is one of the text/plain variants.
func (ct ContentType) IsPlainText() bool {
	return strings.HasPrefix(string(ct), string(ContentTypeTextPlain))
}

// IsBinary reports whether the content type carries binary data.
func (ct ContentType) IsBinary() bool {
	return ct == ContentTypeApplicationOctetStream
}

// String returns the string representation of the content type.
func (ct ContentType) String() string {
	return string(ct)
}

// ContentEncoding is a supported payload transfer encoding.
type ContentEncoding string

// ContentEncodingBase64 is the only encoding accepted for binary payloads.
const ContentEncodingBase64 ContentEncoding = "base64"

// Reference names accepted inside rsa and certificate containers.
const (
	RefPublicKey            = "public_key"
	RefPrivateKey           = "private_key"
	RefPrivateKeyPassphrase = "private_key_passphrase"
	RefCertificate          = "certificate"
	RefIntermediates        = "intermediates"
)

// ReferenceRules lists which reference names a container type requires and which it
// additionally allows.
type ReferenceRules struct {
	Required []string
	Optional []string
}

// Allowed returns the union of required and optional names.
func (r ReferenceRules) Allowed() []string {
	allowed := make([]string, 0, len(r.Required)+len(r.Optional))
	allowed = append(allowed, r.Required...)
	return append(allowed, r.Optional...)
}

// RulesFor returns the reference rules for a container type. Generic containers
// have no rules.
func RulesFor(t ContainerType) (ReferenceRules, bool) {
	switch t {
	case ContainerTypeRSA:
		return ReferenceRules{
			Required: []string{RefPublicKey, RefPrivateKey},
			Optional: []string{RefPrivateKeyPassphrase},
		}, true
	case ContainerTypeCertificate:
		return ReferenceRules{
			Required: []string{RefCertificate},
			Optional: []string{RefPrivateKey, RefPrivateKeyPassphrase, RefIntermediates},
		}, true
	default:
		return ReferenceRules{}, false
	}
}
