package commands

import (
	"fmt"
	"io"

	"github.com/allisson/secrets-validator/internal/validator"
)

// KindLister lists the registered validator kinds.
type KindLister interface {
	Kinds() []validator.Kind
	Get(kind validator.Kind) (validator.Validator, error)
}

// RunKinds prints every validator kind with its display name.
func RunKinds(writer io.Writer, registry KindLister, format string) error {
	kinds := registry.Kinds()

	type kindOutput struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}
	outputs := make([]kindOutput, 0, len(kinds))
	for _, kind := range kinds {
		v, err := registry.Get(kind)
		if err != nil {
			return err
		}
		outputs = append(outputs, kindOutput{Kind: kind.String(), Name: v.Name()})
	}

	if format == "json" {
		return writeJSON(writer, outputs)
	}

	for _, out := range outputs {
		_, _ = fmt.Fprintf(writer, "%-14s %s\n", out.Kind, out.Name)
	}
	return nil
}
