package entities

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PropertyType is the declared type of a bridged property.
// The bridge supports exactly these four types; each has a fixed,
// bijective mapping between its host and script representations.
type PropertyType string

const (
	// TypeString maps host string to script string.
	TypeString PropertyType = "string"

	// TypeInteger maps host int64 to script int64.
	TypeInteger PropertyType = "integer"

	// TypeBoolean maps host bool to script bool.
	TypeBoolean PropertyType = "boolean"

	// TypeTimestamp maps host time.Time to script RFC 3339 string.
	// The string form round-trips to nanosecond precision and survives
	// JSON and Lua value spaces unchanged.
	TypeTimestamp PropertyType = "timestamp"
)

// Valid reports whether t is one of the supported property types.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeString, TypeInteger, TypeBoolean, TypeTimestamp:
		return true
	}
	return false
}

// PropertyDescriptor describes one property exposed for bridging.
// Every read and write is checked against a descriptor before touching
// the host record; the bridge never creates properties.
type PropertyDescriptor struct {
	Name    string       `json:"name" yaml:"name" jsonschema:"required"`
	Type    PropertyType `json:"type" yaml:"type" jsonschema:"required,enum=string,enum=integer,enum=boolean,enum=timestamp"`
	Mutable bool         `json:"mutable" yaml:"mutable"`
}

// Schema is the explicit descriptor table for one host object type.
type Schema struct {
	Object     string               `json:"object" yaml:"object" jsonschema:"required"`
	Properties []PropertyDescriptor `json:"properties" yaml:"properties" jsonschema:"required"`
}

// Descriptor returns the descriptor for the named property.
func (s Schema) Descriptor(name string) (PropertyDescriptor, bool) {
	for _, d := range s.Properties {
		if d.Name == name {
			return d, true
		}
	}
	return PropertyDescriptor{}, false
}

// Names returns the declared property names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Properties))
	for i, d := range s.Properties {
		names[i] = d.Name
	}
	return names
}

// Validate checks the schema for an object name, duplicate properties,
// and unsupported types.
func (s Schema) Validate() error {
	if s.Object == "" {
		return NewErrorDetail(ErrTypeValidation, "schema object name is required")
	}
	if len(s.Properties) == 0 {
		return NewErrorDetail(ErrTypeValidation,
			fmt.Sprintf("schema %q declares no properties", s.Object))
	}
	seen := make(map[string]struct{}, len(s.Properties))
	for _, d := range s.Properties {
		if d.Name == "" {
			return NewErrorDetail(ErrTypeValidation,
				fmt.Sprintf("schema %q has a property without a name", s.Object))
		}
		if _, dup := seen[d.Name]; dup {
			return NewErrorDetail(ErrTypeValidation,
				fmt.Sprintf("schema %q declares property %q twice", s.Object, d.Name))
		}
		seen[d.Name] = struct{}{}
		if !d.Type.Valid() {
			return NewErrorDetail(ErrTypeValidation,
				fmt.Sprintf("schema %q property %q has unsupported type %q", s.Object, d.Name, d.Type))
		}
	}
	return nil
}

// ParseSchemaYAML parses and validates a schema definition from YAML.
func ParseSchemaYAML(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, NewErrorDetail(ErrTypeValidation, "failed to parse schema YAML").
			WithDetails(map[string]any{"cause": err.Error()})
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}
