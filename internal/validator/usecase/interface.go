// Package usecase defines the interfaces and implementations for document validation use cases.
// Use cases resolve validators from the registry, log outcomes and fan batches out across
// a bounded worker group.
package usecase

import (
	"context"
	"time"

	"github.com/allisson/secrets-validator/internal/validator"
)

// ValidatorRegistry resolves the validator registered for a kind.
type ValidatorRegistry interface {
	Get(kind validator.Kind) (validator.Validator, error)
}

// BatchItem is one document submitted to ValidateBatch.
type BatchItem struct {
	Kind         validator.Kind
	Document     validator.Document
	ParentSchema string
	// Source identifies where the document came from, e.g. a file name.
	Source string
}

// BatchResult holds the outcome of one BatchItem, in the same position as its item.
type BatchResult struct {
	Kind     validator.Kind
	Source   string
	Document validator.Document
	Err      error
	Duration time.Duration
}

// ValidationUseCase defines the interface for document validation business logic.
type ValidationUseCase interface {
	// Validate runs the validator registered for kind and returns the normalized document.
	Validate(
		ctx context.Context,
		kind validator.Kind,
		doc validator.Document,
		parentSchema string,
	) (validator.Document, error)
	// ValidateBatch validates every item concurrently. Validation failures are reported per
	// item in BatchResult.Err; the returned error is only set when ctx is done.
	ValidateBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error)
}
