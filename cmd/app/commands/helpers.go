// Package commands contains CLI command implementations for the application.
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/allisson/secrets-validator/internal/app"
	"github.com/allisson/secrets-validator/internal/validator"
)

// Input formats accepted by the validate command.
const (
	InputJSON = "json"
	InputYAML = "yaml"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// detectInputFormat returns the explicit format, or infers it from the file
// extension. Anything that is not YAML is read as JSON.
func detectInputFormat(explicit, source string) (string, error) {
	switch strings.ToLower(explicit) {
	case InputJSON:
		return InputJSON, nil
	case InputYAML, "yml":
		return InputYAML, nil
	case "":
	default:
		return "", fmt.Errorf("invalid input format: %s (valid options: json, yaml)", explicit)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return InputYAML, nil
	default:
		return InputJSON, nil
	}
}

// decodeDocument decodes a single JSON or YAML object. JSON numbers are kept as
// json.Number so integers are not widened to float64.
func decodeDocument(data []byte, format string) (validator.Document, error) {
	var raw any
	switch format {
	case InputYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document must be an object")
	}
	return validator.Document(doc), nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
