package embedder

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildEmbeddingResponseSchema returns the JSON-Schema the model-serving
// response must satisfy: exactly dim numeric entries in "embedding".
func buildEmbeddingResponseSchema(dim int) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"embedding": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "number"},
				"minItems": dim,
				"maxItems": dim,
			},
			"model": map[string]any{"type": "string"},
		},
		"required": []string{"embedding"},
	}
}

// ValidateEmbeddingResponse validates a raw serving response against the
// embedding schema for the given dimensionality.
func ValidateEmbeddingResponse(data []byte, dim int) error {
	b, err := json.Marshal(buildEmbeddingResponseSchema(dim))
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("embedding.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("embedding.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("response does not match schema: %w", err)
	}
	return nil
}
