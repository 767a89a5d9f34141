package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against JSON schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaPath string) error
	// ValidateValue validates an already decoded JSON value (maps, slices, float64, ...)
	ValidateValue(value interface{}, schemaPath string) error
}

type validator struct {
	fsys fs.FS

	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidatorFS creates a validator that loads schemas from fsys,
// typically the embedded filesystem bundled with the binary.
// Compiled schemas are cached per path.
func NewSchemaValidatorFS(fsys fs.FS) SchemaValidator {
	return &validator{
		fsys:     fsys,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateBytes decodes data and validates it against the schema at schemaPath
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.ValidateValue(value, schemaPath)
}

func (v *validator) ValidateValue(value interface{}, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}
	if err := schema.Validate(value); err != nil {
		return describe(err)
	}
	return nil
}

func (v *validator) schema(path string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[path]; ok {
		return s, nil
	}

	raw, err := fs.ReadFile(v.fsys, path)
	if err != nil {
		return nil, err
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schema is not valid JSON: %w", err)
	}
	if err := v.compiler.AddResource(path, doc); err != nil {
		return nil, err
	}
	s, err := v.compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[path] = s
	return s, nil
}

// describe flattens a validation error tree into one line per failing location
func describe(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validation error: %w", err)
	}
	var lines []string
	walk(verr, &lines)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
}

func walk(err *jsonschema.ValidationError, lines *[]string) {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	keyword := ""
	if err.ErrorKind != nil {
		keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keyword != "" {
		*lines = append(*lines, fmt.Sprintf("  - at %s: %s validation failed", location, keyword))
	}

	for _, cause := range err.Causes {
		walk(cause, lines)
	}
}
