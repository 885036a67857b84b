package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	validation "github.com/jellydator/validation"

	"github.com/allisson/secrets-validator/internal/httputil"
	customValidation "github.com/allisson/secrets-validator/internal/validation"
	"github.com/allisson/secrets-validator/internal/validator"
	validationUsecase "github.com/allisson/secrets-validator/internal/validator/usecase"
)

const stdinSource = "-"

// ValidateOptions holds the validate command flags.
type ValidateOptions struct {
	Kind         string
	ParentSchema string
	Format       string
	Input        string
	Files        []string
}

// validateOutput is the JSON representation of one validated document.
type validateOutput struct {
	Source   string                  `json:"source"`
	Kind     string                  `json:"kind"`
	Valid    bool                    `json:"valid"`
	Document validator.Document      `json:"document,omitempty"`
	Status   int                     `json:"status,omitempty"`
	Error    *httputil.ErrorResponse `json:"error,omitempty"`
}

// RunValidate validates every file, or the document on stdin when no file is
// given, and prints the normalized documents or the mapped errors. It returns an
// error when any document is rejected so the process exits non-zero.
func RunValidate(
	ctx context.Context,
	useCase validationUsecase.ValidationUseCase,
	logger *slog.Logger,
	streams IOTuple,
	opts ValidateOptions,
) error {
	kind, err := validator.ParseKind(opts.Kind)
	if err != nil {
		return err
	}
	if err := validation.Validate(opts.ParentSchema, customValidation.NoWhitespace); err != nil {
		return fmt.Errorf("invalid parent schema name: %w", err)
	}

	items, err := readBatch(streams.Reader, kind, opts)
	if err != nil {
		return err
	}

	logger.Info("validating documents",
		slog.String("kind", kind.String()),
		slog.Int("count", len(items)),
	)

	results, err := useCase.ValidateBatch(ctx, items)
	if err != nil {
		return fmt.Errorf("failed to validate documents: %w", err)
	}

	outputs := make([]validateOutput, 0, len(results))
	failed := 0
	for _, result := range results {
		out := validateOutput{
			Source:   result.Source,
			Kind:     result.Kind.String(),
			Valid:    result.Err == nil,
			Document: result.Document,
		}
		if result.Err != nil {
			failed++
			status, response := httputil.MapError(result.Err)
			out.Status = status
			out.Error = &response
		}
		outputs = append(outputs, out)
	}

	if opts.Format == "json" {
		if err := writeJSON(streams.Writer, outputs); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputValidateText(streams.Writer, outputs)
	}

	if failed > 0 {
		return fmt.Errorf("validation failed: %d of %d document(s) rejected", failed, len(outputs))
	}

	return nil
}

// readBatch decodes the documents named in opts into batch items.
func readBatch(reader io.Reader, kind validator.Kind, opts ValidateOptions) ([]validationUsecase.BatchItem, error) {
	sources := opts.Files
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	items := make([]validationUsecase.BatchItem, 0, len(sources))
	for _, source := range sources {
		data, err := readSource(reader, source)
		if err != nil {
			return nil, err
		}

		format, err := detectInputFormat(opts.Input, source)
		if err != nil {
			return nil, err
		}

		doc, err := decodeDocument(data, format)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", source, err)
		}

		items = append(items, validationUsecase.BatchItem{
			Kind:         kind,
			Document:     doc,
			ParentSchema: opts.ParentSchema,
			Source:       source,
		})
	}
	return items, nil
}

func readSource(reader io.Reader, source string) ([]byte, error) {
	if source == stdinSource {
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return data, nil
}

// outputValidateText outputs the validation results in human-readable text format.
func outputValidateText(writer io.Writer, outputs []validateOutput) {
	for _, out := range outputs {
		if out.Valid {
			_, _ = fmt.Fprintf(writer, "%s: valid\n", out.Source)
			continue
		}
		_, _ = fmt.Fprintf(writer, "%s: rejected (%d %s): %s\n",
			out.Source, out.Status, out.Error.Error, out.Error.Message)
	}
}
