package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/secrets-validator/internal/testutil"
	"github.com/allisson/secrets-validator/internal/validator"
	validationUsecase "github.com/allisson/secrets-validator/internal/validator/usecase"
	"github.com/allisson/secrets-validator/internal/validator/usecase/mocks"
)

func newValidationUseCase() validationUsecase.ValidationUseCase {
	return validationUsecase.NewValidationUseCase(testutil.NewRegistry(), testutil.NewDiscardLogger(), 2)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunValidate(t *testing.T) {
	ctx := context.Background()
	logger := testutil.NewDiscardLogger()

	t.Run("success-stdin-text", func(t *testing.T) {
		var out bytes.Buffer
		streams := IOTuple{
			Reader: strings.NewReader(`{"plugin_name": "  p1  ", "transport_key": " abc "}`),
			Writer: &out,
		}

		err := RunValidate(ctx, newValidationUseCase(), logger, streams, ValidateOptions{
			Kind:   "transport-key",
			Format: "text",
		})
		require.NoError(t, err)
		require.Equal(t, "-: valid\n", out.String())
	})

	t.Run("success-stdin-json", func(t *testing.T) {
		var out bytes.Buffer
		streams := IOTuple{
			Reader: strings.NewReader(`{"plugin_name": "  p1  ", "transport_key": " abc "}`),
			Writer: &out,
		}

		err := RunValidate(ctx, newValidationUseCase(), logger, streams, ValidateOptions{
			Kind:   "transport-key",
			Format: "json",
		})
		require.NoError(t, err)

		var result []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Len(t, result, 1)
		require.Equal(t, true, result[0]["valid"])
		require.Equal(t, map[string]any{"plugin_name": "p1", "transport_key": "abc"}, result[0]["document"])
	})

	t.Run("success-json-integer-bit-length", func(t *testing.T) {
		var out bytes.Buffer
		streams := IOTuple{
			Reader: strings.NewReader(`{"type": "key", "meta": {"bit_length": 256, "algorithm": "aes"}}`),
			Writer: &out,
		}

		err := RunValidate(ctx, newValidationUseCase(), logger, streams, ValidateOptions{Kind: "order"})
		require.NoError(t, err)
	})

	t.Run("success-yaml-file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "container.yaml", `
type: rsa
secret_refs:
  - secret_ref: http://localhost/v1/secrets/1
    name: public_key
  - secret_ref: http://localhost/v1/secrets/2
    name: private_key
`)

		var out bytes.Buffer
		err := RunValidate(ctx, newValidationUseCase(), logger, IOTuple{Writer: &out}, ValidateOptions{
			Kind:  "container",
			Files: []string{path},
		})
		require.NoError(t, err)
		require.Contains(t, out.String(), path+": valid")
	})

	t.Run("rejected-document-fails", func(t *testing.T) {
		dir := t.TempDir()
		good := writeFile(t, dir, "good.json", `{"name": "lbaas", "URL": "http://lbaas"}`)
		bad := writeFile(t, dir, "bad.json", `{"name": 7, "URL": "http://lbaas"}`)

		var out bytes.Buffer
		err := RunValidate(ctx, newValidationUseCase(), logger, IOTuple{Writer: &out}, ValidateOptions{
			Kind:   "consumer",
			Format: "json",
			Files:  []string{good, bad},
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "1 of 2")

		var result []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Len(t, result, 2)
		require.Equal(t, true, result[0]["valid"])
		require.Equal(t, false, result[1]["valid"])
		require.Equal(t, float64(422), result[1]["status"])

		errorBody, ok := result[1]["error"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "invalid_input", errorBody["error"])
		require.Equal(t, "name", errorBody["property"])
	})

	t.Run("rejected-document-text", func(t *testing.T) {
		var out bytes.Buffer
		streams := IOTuple{
			Reader: strings.NewReader(`{"type": "asymmetric"}`),
			Writer: &out,
		}

		err := RunValidate(ctx, newValidationUseCase(), logger, streams, ValidateOptions{Kind: "order"})
		require.Error(t, err)
		require.Contains(t, out.String(), "-: rejected (422 invalid_input)")
	})

	t.Run("invalid-kind", func(t *testing.T) {
		err := RunValidate(ctx, nil, logger, IOTuple{}, ValidateOptions{Kind: "bogus"})
		require.ErrorIs(t, err, validator.ErrUnknownKind)
	})

	t.Run("parent-with-whitespace", func(t *testing.T) {
		err := RunValidate(ctx, nil, logger, IOTuple{}, ValidateOptions{Kind: "secret", ParentSchema: " Order"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid parent schema name")
	})

	t.Run("nested-secret-with-parent", func(t *testing.T) {
		var out bytes.Buffer
		streams := IOTuple{
			Reader: strings.NewReader(`{"payload_content_type": "application/octet-stream"}`),
			Writer: &out,
		}

		err := RunValidate(ctx, newValidationUseCase(), logger, streams, ValidateOptions{
			Kind:         "secret",
			ParentSchema: "Order",
		})
		require.NoError(t, err)
	})

	t.Run("invalid-input-format", func(t *testing.T) {
		streams := IOTuple{Reader: strings.NewReader(`{}`), Writer: io.Discard}
		err := RunValidate(ctx, nil, logger, streams, ValidateOptions{Kind: "secret", Input: "toml"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid input format")
	})

	t.Run("undecodable-document", func(t *testing.T) {
		streams := IOTuple{Reader: strings.NewReader(`[1, 2]`), Writer: io.Discard}
		err := RunValidate(ctx, nil, logger, streams, ValidateOptions{Kind: "secret"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "document must be an object")
	})

	t.Run("missing-file", func(t *testing.T) {
		err := RunValidate(ctx, nil, logger, IOTuple{}, ValidateOptions{
			Kind:  "secret",
			Files: []string{filepath.Join(t.TempDir(), "missing.json")},
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read")
	})

	t.Run("batch-aborted", func(t *testing.T) {
		mockUseCase := &mocks.MockValidationUseCase{}
		mockUseCase.On("ValidateBatch", ctx, mock.AnythingOfType("[]usecase.BatchItem")).
			Return(nil, context.Canceled)

		streams := IOTuple{Reader: strings.NewReader(`{}`), Writer: io.Discard}
		err := RunValidate(ctx, mockUseCase, logger, streams, ValidateOptions{Kind: "secret"})
		require.ErrorIs(t, err, context.Canceled)
		mockUseCase.AssertExpectations(t)
	})
}

func TestDetectInputFormat(t *testing.T) {
	tests := []struct {
		explicit string
		source   string
		expected string
	}{
		{explicit: "", source: "doc.json", expected: InputJSON},
		{explicit: "", source: "doc.YAML", expected: InputYAML},
		{explicit: "", source: "doc.yml", expected: InputYAML},
		{explicit: "", source: "-", expected: InputJSON},
		{explicit: "yaml", source: "-", expected: InputYAML},
		{explicit: "json", source: "doc.yaml", expected: InputJSON},
	}

	for _, tt := range tests {
		t.Run(tt.explicit+"|"+tt.source, func(t *testing.T) {
			format, err := detectInputFormat(tt.explicit, tt.source)
			require.NoError(t, err)
			require.Equal(t, tt.expected, format)
		})
	}
}

func TestDecodeDocument(t *testing.T) {
	t.Run("json-keeps-numbers", func(t *testing.T) {
		doc, err := decodeDocument([]byte(`{"bit_length": 256}`), InputJSON)
		require.NoError(t, err)
		require.Equal(t, json.Number("256"), doc["bit_length"])
	})

	t.Run("yaml-nested-object", func(t *testing.T) {
		doc, err := decodeDocument([]byte("meta:\n  bit_length: 256\n"), InputYAML)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"bit_length": 256}, doc["meta"])
	})

	t.Run("invalid-json", func(t *testing.T) {
		_, err := decodeDocument([]byte(`{`), InputJSON)
		require.Error(t, err)
	})
}
