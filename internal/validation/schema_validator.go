package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names, relative to the embedded schemas directory
const (
	WorldSchema = "world.schema.json"
	SaveSchema  = "save.schema.json"
)

//go:embed schemas/*.json
var embedded embed.FS

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	files    fs.FS
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator backed by the schemas shipped with the binary
func NewSchemaValidator() SchemaValidator {
	sub, err := fs.Sub(embedded, "schemas")
	if err != nil {
		// embedded paths are fixed at compile time
		panic(err)
	}
	return NewSchemaValidatorFS(sub)
}

// NewSchemaValidatorFS creates a validator that reads schemas from files
func NewSchemaValidatorFS(files fs.FS) SchemaValidator {
	return &validator{
		files:    files,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateBytes validates JSON data bytes against a named schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	// Load and compile schema (cached)
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(schemaName string) (*jsonschema.Schema, error) {
	if schema, ok := v.schemas[schemaName]; ok {
		return schema, nil
	}

	schemaData, err := fs.ReadFile(v.files, schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	schemaJSON, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(schemaName, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaName] = schema

	return schema, nil
}

// formatValidationError flattens a validation error tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var failures []string
		collectErrors(validationErr, &failures)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(failures, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects the leaf validation errors
func collectErrors(err *jsonschema.ValidationError, failures *[]string) {
	if len(err.Causes) == 0 {
		*failures = append(*failures, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, failures)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
