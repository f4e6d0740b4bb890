package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-faster/jx"
)

// JSONSchemaSpec is the json_schema payload of a response format.
// Schema is kept as raw JSON so the declared property order survives
// round-trips (key order is an observable guarantee for LLM results).
type JSONSchemaSpec struct {
	Name   string          `json:"name"`
	Schema json.RawMessage `json:"schema"`
	Strict bool            `json:"strict"`
}

// ResponseFormat constrains LLM output. Type is always "json_schema" for
// stored schemas; the built-in default prompt uses a bare "json_object".
type ResponseFormat struct {
	Type       string          `json:"type"`
	JSONSchema *JSONSchemaSpec `json:"json_schema,omitempty"`
}

// ValidateSchemaRoot enforces the stored-schema invariants: the root must be
// an object type and carry properties, required, and additionalProperties.
func ValidateSchemaRoot(schema json.RawMessage) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(schema, &root); err != nil {
		return fmt.Errorf("schema is not a JSON object: %w", err)
	}
	var rootType string
	if raw, ok := root["type"]; !ok || json.Unmarshal(raw, &rootType) != nil || rootType != "object" {
		return fmt.Errorf("schema root type must be \"object\"")
	}
	for _, key := range []string{"properties", "required", "additionalProperties"} {
		if _, ok := root[key]; !ok {
			return fmt.Errorf("schema root is missing %q", key)
		}
	}
	return nil
}

// SchemaPropertyOrder returns the schema's top-level property names in their
// declared order.
func SchemaPropertyOrder(schema json.RawMessage) ([]string, error) {
	d := jx.DecodeBytes(schema)
	var order []string
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "properties" {
			return d.Skip()
		}
		return d.Obj(func(d *jx.Decoder, prop string) error {
			order = append(order, prop)
			return d.Skip()
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading schema property order: %w", err)
	}
	return order, nil
}
