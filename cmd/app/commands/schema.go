package commands

import (
	"io"

	"github.com/allisson/secrets-validator/internal/validator"
	validationUsecase "github.com/allisson/secrets-validator/internal/validator/usecase"
)

// RunSchema prints the JSON schema used by the validator registered for kind.
func RunSchema(writer io.Writer, registry validationUsecase.ValidatorRegistry, kind string) error {
	parsed, err := validator.ParseKind(kind)
	if err != nil {
		return err
	}

	v, err := registry.Get(parsed)
	if err != nil {
		return err
	}

	_, err = writer.Write(v.Schema().Raw())
	return err
}
