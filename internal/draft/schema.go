package draft

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError reports schema violations in serialized draft data.
type ValidationError struct {
	Shape  string
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s draft validation failed:\n", e.Shape))
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

// jsonSchema builds the JSON Schema document for the shape: every field
// required with its declared type, no additional properties.
func (s *Shape) jsonSchema() map[string]any {
	props := make(map[string]any, len(s.Fields))
	required := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Kind == KindList {
			props[f.Name] = map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			}
		} else {
			props[f.Name] = map[string]any{"type": "string"}
		}
		required = append(required, f.Name)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// ValidateWire checks serialized draft data against the shape's schema.
// Returns a *ValidationError when the data does not conform.
func ValidateWire(shape *Shape, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(shape.jsonSchema()),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("draft: validate %s data: %w", shape.Name, err)
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{Shape: shape.Name}
	for _, re := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return ve
}
