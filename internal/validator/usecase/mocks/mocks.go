// Package mocks provides mock implementations for testing validation use case consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/secrets-validator/internal/validator"
	"github.com/allisson/secrets-validator/internal/validator/usecase"
)

// MockValidationUseCase is a mock implementation of ValidationUseCase for testing.
type MockValidationUseCase struct {
	mock.Mock
}

var _ usecase.ValidationUseCase = (*MockValidationUseCase)(nil)

// Validate mocks the Validate method of ValidationUseCase.
func (m *MockValidationUseCase) Validate(
	ctx context.Context,
	kind validator.Kind,
	doc validator.Document,
	parentSchema string,
) (validator.Document, error) {
	args := m.Called(ctx, kind, doc, parentSchema)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(validator.Document), args.Error(1)
}

// ValidateBatch mocks the ValidateBatch method of ValidationUseCase.
func (m *MockValidationUseCase) ValidateBatch(
	ctx context.Context,
	items []usecase.BatchItem,
) ([]usecase.BatchResult, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.BatchResult), args.Error(1)
}
