package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/internal/testutil"
)

func TestGenerateSchema_SimpleStruct(t *testing.T) {
	type ScriptConfig struct {
		Function string `json:"function"`
		Timeout  int    `json:"timeout" default:"30"`
	}

	schema, err := GenerateSchema(ScriptConfig{})
	require.NoError(t, err)
	assert.NotEmpty(t, schema)

	var decoded map[string]interface{}
	err = json.Unmarshal(schema, &decoded)
	require.NoError(t, err)

	assert.Contains(t, string(schema), "function")
	assert.Contains(t, string(schema), "timeout")
}

func TestGenerateSchema_NestedStruct(t *testing.T) {
	type RetryConfig struct {
		Attempts int `json:"attempts"`
		DelayMS  int `json:"delay_ms"`
	}

	type Config struct {
		Retry  RetryConfig `json:"retry"`
		Strict bool        `json:"strict"`
	}

	schema, err := GenerateSchema(Config{})
	require.NoError(t, err)

	var decoded map[string]interface{}
	err = json.Unmarshal(schema, &decoded)
	require.NoError(t, err)

	schemaStr := string(schema)
	assert.Contains(t, schemaStr, "retry")
	assert.Contains(t, schemaStr, "attempts")
	assert.Contains(t, schemaStr, "strict")
}

func TestGenerateObjectSchema(t *testing.T) {
	schema, err := GenerateObjectSchema(testutil.SampleSchema())
	require.NoError(t, err)

	var decoded struct {
		Type       string `json:"type"`
		Title      string `json:"title"`
		Properties map[string]struct {
			Type string `json:"type"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(schema, &decoded))

	assert.Equal(t, "object", decoded.Type)
	assert.Equal(t, "partner", decoded.Title)
	require.Len(t, decoded.Properties, 5)
	assert.Equal(t, "integer", decoded.Properties["id"].Type)
	assert.Equal(t, "string", decoded.Properties["name"].Type)
	assert.Equal(t, "boolean", decoded.Properties["is_company"].Type)
	assert.Equal(t, "string", decoded.Properties["created_at"].Type)
}

func TestGenerateObjectSchema_InvalidSchema(t *testing.T) {
	_, err := GenerateObjectSchema(entities.Schema{Object: "partner"})
	require.Error(t, err)
}
