// Package llm invokes a language model that answers with a JSON object of
// a fixed shape.
package llm

import (
	"context"
)

// Schema describes the object the model must return: a named set of
// required string fields.
type Schema struct {
	Name   string
	Fields []string
}

// JSONSchema renders the schema in the JSON Schema dialect accepted by
// structured-output endpoints.
func (s Schema) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Fields))
	required := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		props[f] = map[string]any{"type": "string"}
		required = append(required, f)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// Generator runs a prompt and decodes the structured answer into out.
type Generator interface {
	Generate(ctx context.Context, prompt string, schema Schema, out any) error
}
