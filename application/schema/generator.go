// Package schema provides JSON schema generation utilities for the SDK.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// GenerateObjectSchema renders a property schema as a JSON Schema document
// so hosts can publish the shape of an exported object.
func GenerateObjectSchema(s entities.Schema) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	properties := jsonschema.NewProperties()
	for _, desc := range s.Properties {
		properties.Set(desc.Name, &jsonschema.Schema{
			Type: jsonSchemaType(desc.Type),
		})
	}

	doc := &jsonschema.Schema{
		Type:       "object",
		Title:      s.Object,
		Properties: properties,
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return jsonBytes, nil
}

func jsonSchemaType(t entities.PropertyType) string {
	switch t {
	case entities.TypeInteger:
		return "integer"
	case entities.TypeBoolean:
		return "boolean"
	default:
		// Timestamps cross as RFC 3339 strings.
		return "string"
	}
}
