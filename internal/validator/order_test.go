package validator

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/secrets-validator/internal/errors"
)

func newKeyOrderDocument() Document {
	return Document{
		"type": "key",
		"meta": map[string]any{
			"name":                 "secretname",
			"algorithm":            "AES",
			"bit_length":           256,
			"mode":                 "cbc",
			"payload_content_type": "application/octet-stream",
		},
	}
}

func TestOrderValidator_Validate(t *testing.T) {
	v := NewOrderValidator(testOptions())

	t.Run("Success_KeyOrder", func(t *testing.T) {
		result, err := v.Validate(newKeyOrderDocument(), "")
		require.NoError(t, err)
		assert.Equal(t, "key", result["type"])
	})

	t.Run("Success_KeyOrderNormalizesMeta", func(t *testing.T) {
		doc := Document{"type": "key", "meta": map[string]any{"name": "k1", "bit_length": 256}}

		result, err := v.Validate(doc, "")
		require.NoError(t, err)
		meta := result["meta"].(map[string]any)
		assert.Equal(t, "k1", meta["name"])
	})

	t.Run("Success_KeyOrderTrimsMetaName", func(t *testing.T) {
		doc := Document{"type": "key", "meta": Document{"name": "  k1  ", "bit_length": 128}}

		_, err := v.Validate(doc, "")
		require.NoError(t, err)
		assert.Equal(t, "k1", doc["meta"].(Document)["name"])
	})

	t.Run("Success_KeyOrderDecodedJSON", func(t *testing.T) {
		var doc Document
		require.NoError(t, json.Unmarshal([]byte(`{"type": "key", "meta": {"bit_length": 512}}`), &doc))

		_, err := v.Validate(doc, "")
		require.NoError(t, err)
	})

	t.Run("Success_KeyOrderIntegralFloatBitLength", func(t *testing.T) {
		for _, bits := range []any{json.Number("256.0"), json.Number("2.56e2"), float64(256)} {
			doc := Document{"type": "key", "meta": map[string]any{"bit_length": bits}}

			_, err := v.Validate(doc, "")
			require.NoError(t, err, "bit_length %v", bits)
		}
	})

	t.Run("Success_AsymmetricOrder", func(t *testing.T) {
		doc := Document{"type": "asymmetric", "meta": map[string]any{"algorithm": "rsa"}}

		_, err := v.Validate(doc, "")
		require.NoError(t, err)
	})

	t.Run("Success_CertificateOrder", func(t *testing.T) {
		doc := Document{"type": "certificate", "meta": map[string]any{}}

		_, err := v.Validate(doc, "")
		require.NoError(t, err)
	})

	t.Run("Error_MissingType", func(t *testing.T) {
		_, err := v.Validate(Document{"meta": map[string]any{}}, "")
		requireInvalidDocument(t, err, "Order", "")
	})

	t.Run("Error_UnknownType", func(t *testing.T) {
		_, err := v.Validate(Document{"type": "symmetric", "meta": map[string]any{}}, "")
		requireInvalidDocument(t, err, "Order", "type")
	})

	t.Run("Error_MetaNotObject", func(t *testing.T) {
		_, err := v.Validate(Document{"type": "key", "meta": "bits"}, "")
		requireInvalidDocument(t, err, "Order", "meta")
	})

	t.Run("Error_MissingMeta", func(t *testing.T) {
		for _, orderType := range []string{"key", "asymmetric", "certificate"} {
			_, err := v.Validate(Document{"type": orderType}, "")
			requireInvalidDocument(t, err, "Order", "meta")
		}
	})

	t.Run("Error_PayloadInKeyOrder", func(t *testing.T) {
		doc := Document{"type": "key", "meta": map[string]any{"bit_length": 256, "payload": "x"}}

		_, err := v.Validate(doc, "")
		requireInvalidDocument(t, err, "Order", "meta")
	})

	t.Run("Error_BitLengthNotMultipleOfEight", func(t *testing.T) {
		doc := Document{"type": "key", "meta": map[string]any{"bit_length": 255}}

		_, err := v.Validate(doc, "")
		var unsupported *UnsupportedFieldError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "bit_length", unsupported.Field)
		assert.Equal(t, "Order", unsupported.Schema)
		assert.False(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Error_BitLengthMissing", func(t *testing.T) {
		doc := Document{"type": "key", "meta": map[string]any{"name": "no-bits"}}

		_, err := v.Validate(doc, "")
		var unsupported *UnsupportedFieldError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "bit_length", unsupported.Field)
	})

	t.Run("Error_BitLengthZeroRejectedBySecretSchema", func(t *testing.T) {
		doc := Document{"type": "key", "meta": map[string]any{"bit_length": 0}}

		_, err := v.Validate(doc, "")
		requireInvalidDocument(t, err, "Secret' within 'Order", "bit_length")
	})

	t.Run("Error_MetaExpirationInPast", func(t *testing.T) {
		doc := newKeyOrderDocument()
		doc["meta"].(map[string]any)["expiration"] = "2020-01-01T00:00:00Z"

		_, err := v.Validate(doc, "")
		requireInvalidDocument(t, err, "Secret' within 'Order", "expiration")
	})

	t.Run("Error_SchemaNameIncludesParent", func(t *testing.T) {
		_, err := v.Validate(Document{}, "Batch")
		requireInvalidDocument(t, err, "Order' within 'Batch", "")
	})
}

func TestFeatureNotImplemented(t *testing.T) {
	err := featureNotImplemented("quantum", "Order")

	var notImplemented *FeatureNotImplementedError
	require.ErrorAs(t, err, &notImplemented)
	assert.Equal(t, "type", notImplemented.Field)
	assert.Contains(t, notImplemented.Reason, "'quantum'")
	assert.True(t, apperrors.Is(err, apperrors.ErrNotImplemented))
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
		ok       bool
	}{
		{name: "int", input: 256, expected: 256, ok: true},
		{name: "int64", input: int64(128), expected: 128, ok: true},
		{name: "uint64", input: uint64(512), expected: 512, ok: true},
		{name: "uint64 overflow", input: uint64(math.MaxUint64), ok: false},
		{name: "float64 integral", input: float64(1024), expected: 1024, ok: true},
		{name: "float64 fractional", input: 1.5, ok: false},
		{name: "float64 overflow", input: 1e19, ok: false},
		{name: "json integer", input: json.Number("256"), expected: 256, ok: true},
		{name: "json integral float", input: json.Number("256.0"), expected: 256, ok: true},
		{name: "json exponent", input: json.Number("2.56e2"), expected: 256, ok: true},
		{name: "json fractional", input: json.Number("256.5"), ok: false},
		{name: "json overflow", input: json.Number("1e30"), ok: false},
		{name: "string", input: "256", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toInt(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
