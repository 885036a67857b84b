package usecase

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/allisson/secrets-validator/internal/errors"
	"github.com/allisson/secrets-validator/internal/metrics"
	"github.com/allisson/secrets-validator/internal/validator"
)

const metricsDomain = "validation"

// validationUseCaseWithMetrics decorates ValidationUseCase with metrics instrumentation.
type validationUseCaseWithMetrics struct {
	next    ValidationUseCase
	metrics metrics.BusinessMetrics
}

// NewValidationUseCaseWithMetrics wraps a ValidationUseCase with metrics recording.
func NewValidationUseCaseWithMetrics(useCase ValidationUseCase, m metrics.BusinessMetrics) ValidationUseCase {
	return &validationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Validate records metrics for a single document validation.
func (v *validationUseCaseWithMetrics) Validate(
	ctx context.Context,
	kind validator.Kind,
	doc validator.Document,
	parentSchema string,
) (validator.Document, error) {
	start := time.Now()
	result, err := v.next.Validate(ctx, kind, doc, parentSchema)

	v.record(ctx, kind, time.Since(start), err)

	return result, err
}

// ValidateBatch records one operation per batch item, using the item's own duration.
func (v *validationUseCaseWithMetrics) ValidateBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	results, err := v.next.ValidateBatch(ctx, items)
	if err != nil {
		return results, err
	}

	for _, result := range results {
		v.record(ctx, result.Kind, result.Duration, result.Err)
	}

	return results, nil
}

func (v *validationUseCaseWithMetrics) record(
	ctx context.Context,
	kind validator.Kind,
	duration time.Duration,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	operation := operationName(kind)
	v.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	v.metrics.RecordDuration(ctx, metricsDomain, operation, duration, status)
	if err != nil {
		v.metrics.RecordRejection(ctx, operation, rejectionCategory(err))
	}
}

// rejectionCategory names the error sentinel behind err.
func rejectionCategory(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return "invalid_input"
	case apperrors.Is(err, apperrors.ErrUnsupportedField):
		return "unsupported_field"
	case apperrors.Is(err, apperrors.ErrNotImplemented):
		return "feature_not_implemented"
	case apperrors.Is(err, apperrors.ErrLimitExceeded):
		return "limit_exceeded"
	default:
		return "internal_error"
	}
}

// operationName returns the metric operation label for kind, e.g. "legacy_order_validate".
func operationName(kind validator.Kind) string {
	return strings.ReplaceAll(kind.String(), "-", "_") + "_validate"
}
