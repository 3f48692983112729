package scene

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const sceneSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["figures"],
  "additionalProperties": false,
  "properties": {
    "figures": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["kind", "points"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "kind": {"enum": ["square", "triangle", "octagon"]},
          "points": {
            "type": "array",
            "minItems": 2,
            "maxItems": 2,
            "items": {
              "type": "array",
              "minItems": 2,
              "maxItems": 2,
              "items": {"type": "number"}
            }
          },
          "height": {"type": "number"}
        },
        "if": {"properties": {"kind": {"const": "triangle"}}},
        "then": {"required": ["height"]},
        "else": {"not": {"required": ["height"]}}
      }
    }
  }
}`

// Validator validates decoded documents against a JSON Schema.
type Validator struct {
	schemaLoader gojsonschema.JSONLoader
}

// NewValidator creates a validator from schema bytes.
func NewValidator(schemaData []byte) *Validator {
	return &Validator{schemaLoader: gojsonschema.NewBytesLoader(schemaData)}
}

// Validate validates a decoded document against the schema.
func (v *Validator) Validate(document map[string]interface{}) error {
	result, err := gojsonschema.Validate(v.schemaLoader, gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		var descriptions []string
		for _, desc := range result.Errors() {
			descriptions = append(descriptions, desc.String())
		}
		return fmt.Errorf("validation failed: %v", strings.Join(descriptions, "; "))
	}
	return nil
}

var defaultValidator = NewValidator([]byte(sceneSchema))
