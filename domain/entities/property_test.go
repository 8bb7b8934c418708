package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyType_Valid(t *testing.T) {
	for _, valid := range []PropertyType{TypeString, TypeInteger, TypeBoolean, TypeTimestamp} {
		assert.True(t, valid.Valid(), "%s should be valid", valid)
	}
	assert.False(t, PropertyType("decimal").Valid())
	assert.False(t, PropertyType("").Valid())
}

func TestSchema_Validate(t *testing.T) {
	valid := Schema{
		Object: "partner",
		Properties: []PropertyDescriptor{
			{Name: "name", Type: TypeString, Mutable: true},
		},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		schema Schema
	}{
		{
			name:   "missing object name",
			schema: Schema{Properties: valid.Properties},
		},
		{
			name:   "no properties",
			schema: Schema{Object: "partner"},
		},
		{
			name: "unnamed property",
			schema: Schema{
				Object:     "partner",
				Properties: []PropertyDescriptor{{Type: TypeString}},
			},
		},
		{
			name: "duplicate property",
			schema: Schema{
				Object: "partner",
				Properties: []PropertyDescriptor{
					{Name: "name", Type: TypeString},
					{Name: "name", Type: TypeString},
				},
			},
		},
		{
			name: "unsupported type",
			schema: Schema{
				Object:     "partner",
				Properties: []PropertyDescriptor{{Name: "price", Type: "decimal"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			require.Error(t, err)
			detail := ToErrorDetail(err)
			assert.Equal(t, ErrTypeValidation, detail.Type)
		})
	}
}

func TestSchema_DescriptorAndNames(t *testing.T) {
	s := Schema{
		Object: "partner",
		Properties: []PropertyDescriptor{
			{Name: "id", Type: TypeInteger},
			{Name: "name", Type: TypeString, Mutable: true},
		},
	}

	desc, ok := s.Descriptor("name")
	require.True(t, ok)
	assert.True(t, desc.Mutable)
	assert.Equal(t, TypeString, desc.Type)

	_, ok = s.Descriptor("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"id", "name"}, s.Names())
}

func TestParseSchemaYAML(t *testing.T) {
	data := []byte(`
object: partner
properties:
  - name: id
    type: integer
  - name: name
    type: string
    mutable: true
`)
	s, err := ParseSchemaYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "partner", s.Object)
	require.Len(t, s.Properties, 2)
	assert.False(t, s.Properties[0].Mutable)
	assert.True(t, s.Properties[1].Mutable)
}

func TestParseSchemaYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "object: [unclosed"},
		{"fails validation", "object: partner\nproperties: []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchemaYAML([]byte(tt.data))
			require.Error(t, err)
			detail := ToErrorDetail(err)
			assert.Equal(t, ErrTypeValidation, detail.Type)
		})
	}
}
