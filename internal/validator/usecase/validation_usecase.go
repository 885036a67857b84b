package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/allisson/secrets-validator/internal/errors"
	"github.com/allisson/secrets-validator/internal/validator"
)

// DefaultConcurrency is used when a non-positive concurrency is configured.
const DefaultConcurrency = 4

// validationUseCase implements the ValidationUseCase interface.
type validationUseCase struct {
	registry    ValidatorRegistry
	logger      *slog.Logger
	concurrency int
}

// NewValidationUseCase creates a new ValidationUseCase.
func NewValidationUseCase(registry ValidatorRegistry, logger *slog.Logger, concurrency int) ValidationUseCase {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &validationUseCase{
		registry:    registry,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Validate runs the validator registered for kind.
func (u *validationUseCase) Validate(
	ctx context.Context,
	kind validator.Kind,
	doc validator.Document,
	parentSchema string,
) (validator.Document, error) {
	return u.validate(ctx, u.logger, kind, doc, parentSchema)
}

// ValidateBatch validates items with at most u.concurrency documents in flight.
func (u *validationUseCase) ValidateBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.Must(uuid.NewV7())
	logger := u.logger.With(slog.String("run_id", runID.String()))
	results := make([]BatchResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			doc, err := u.validate(gctx, logger, item.Kind, item.Document, item.ParentSchema)
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}

			results[i] = BatchResult{
				Kind:     item.Kind,
				Source:   item.Source,
				Document: doc,
				Err:      err,
				Duration: time.Since(start),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.WarnContext(ctx, "batch validation aborted", slog.String("error", err.Error()))
		return nil, err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	logger.InfoContext(ctx, "batch validated",
		slog.Int("total", len(results)),
		slog.Int("failed", failed))

	return results, nil
}

func (u *validationUseCase) validate(
	ctx context.Context,
	logger *slog.Logger,
	kind validator.Kind,
	doc validator.Document,
	parentSchema string,
) (validator.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := u.registry.Get(kind)
	if err != nil {
		logger.WarnContext(ctx, "unknown validator kind", slog.String("kind", kind.String()))
		return nil, err
	}

	result, err := v.Validate(doc, parentSchema)
	if err != nil {
		logger.WarnContext(ctx, "document rejected", failureAttrs(kind, err)...)
		return nil, err
	}

	logger.DebugContext(ctx, "document validated", slog.String("kind", kind.String()))
	return result, nil
}

// failureAttrs describes a validation error for structured logging.
func failureAttrs(kind validator.Kind, err error) []any {
	attrs := []any{
		slog.String("kind", kind.String()),
		slog.String("error", err.Error()),
	}

	var invalid *validator.InvalidDocumentError
	var unsupported *validator.UnsupportedFieldError
	var notImplemented *validator.FeatureNotImplementedError
	var limit *validator.LimitExceededError
	switch {
	case apperrors.As(err, &invalid):
		attrs = append(attrs, slog.String("schema", invalid.Schema), slog.String("property", invalid.Property))
	case apperrors.As(err, &unsupported):
		attrs = append(attrs, slog.String("schema", unsupported.Schema), slog.String("field", unsupported.Field))
	case apperrors.As(err, &notImplemented):
		attrs = append(attrs, slog.String("schema", notImplemented.Schema), slog.String("field", notImplemented.Field))
	case apperrors.As(err, &limit):
		attrs = append(attrs, slog.Int("limit", limit.Limit))
	}
	return attrs
}
