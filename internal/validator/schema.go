package validator

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// pathSeparator joins gojsonschema context segments so property names
// containing dots survive the split.
const pathSeparator = "\x1f"

// Schema is a compiled JSON schema together with its source document.
type Schema struct {
	raw      []byte
	compiled *gojsonschema.Schema
}

// NewSchema compiles a JSON schema document.
func NewSchema(raw []byte) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Schema{raw: raw, compiled: compiled}, nil
}

// mustLoadSchema compiles one of the embedded schemas and panics on failure.
func mustLoadSchema(file string) *Schema {
	raw, err := schemaFS.ReadFile("schemas/" + file)
	if err != nil {
		panic(fmt.Sprintf("validator: missing schema %s: %v", file, err))
	}
	s, err := NewSchema(raw)
	if err != nil {
		panic(fmt.Sprintf("validator: schema %s: %v", file, err))
	}
	return s
}

// Raw returns the JSON source of the schema.
func (s *Schema) Raw() []byte {
	return s.raw
}

// Check validates value against the schema. It returns nil when the value
// conforms, otherwise the first violation in path order. An error is returned
// only when value cannot be loaded as JSON.
func (s *Schema) Check(value any) (*Violation, error) {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(value))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}

	errs := result.Errors()
	sort.SliceStable(errs, func(i, j int) bool {
		pi, pj := errs[i].Context().String(pathSeparator), errs[j].Context().String(pathSeparator)
		if pi != pj {
			return pi < pj
		}
		return errs[i].Type() < errs[j].Type()
	})

	first := errs[0]
	return &Violation{
		Path:    strings.Split(first.Context().String(pathSeparator), pathSeparator),
		Message: first.Description(),
	}, nil
}

// Violation is a single structural schema failure.
type Violation struct {
	// Path starts at the document root, e.g. ["(root)", "meta", "bit_length"].
	Path    []string
	Message string
}

// Property returns the top-level property that caused the violation: the
// second path segment, or "" when the failure is on the document itself.
func (v *Violation) Property() string {
	if len(v.Path) > 1 {
		return v.Path[1]
	}
	return ""
}
