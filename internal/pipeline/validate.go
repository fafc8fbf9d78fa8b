package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schemas for the itemized job outcome columns. Whatever gets persisted in
// the successes/failures JSON must pass these, so downstream readers can
// rely on the shape.
var (
	successesSchema = map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"page_number", "data"},
			"properties": map[string]any{
				"page_number": map[string]any{"type": "integer", "minimum": 1},
				"data":        map[string]any{"type": "object"},
			},
		},
	}
	failuresSchema = map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"page_number", "detail"},
			"properties": map[string]any{
				"page_number": map[string]any{"type": "integer", "minimum": 0},
				"detail":      map[string]any{"type": "string", "minLength": 1},
			},
		},
	}
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

func encodeJSON(v any, schemaMap map[string]any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if err := ValidateJSONAgainstSchema(schemaMap, b); err != nil {
		return nil, err
	}
	return b, nil
}
