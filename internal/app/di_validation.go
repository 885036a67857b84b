package app

import (
	"fmt"

	"github.com/allisson/secrets-validator/internal/validator"
	validationUsecase "github.com/allisson/secrets-validator/internal/validator/usecase"
)

// Registry returns the validator registry.
func (c *Container) Registry() *validator.Registry {
	c.registryInit.Do(func() {
		c.registry = c.initRegistry()
	})
	return c.registry
}

// ValidationUseCase returns the validation use case, decorated with metrics when enabled.
func (c *Container) ValidationUseCase() (validationUsecase.ValidationUseCase, error) {
	var err error
	c.validationUseCaseInit.Do(func() {
		c.validationUseCase, err = c.initValidationUseCase()
		if err != nil {
			c.initErrors["validationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["validationUseCase"]; exists {
		return nil, storedErr
	}
	return c.validationUseCase, nil
}

// initRegistry builds the validators. The config is the size limit, so later
// changes to MaxAllowedSecretInBytes apply to the next validation.
func (c *Container) initRegistry() *validator.Registry {
	return validator.NewRegistry(validator.Options{
		Limit: c.config,
	})
}

// initValidationUseCase creates the validation use case with all its dependencies.
func (c *Container) initValidationUseCase() (validationUsecase.ValidationUseCase, error) {
	baseUseCase := validationUsecase.NewValidationUseCase(
		c.Registry(),
		c.Logger(),
		c.config.ValidationConcurrency,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for validation use case: %w", err)
		}
		return validationUsecase.NewValidationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
