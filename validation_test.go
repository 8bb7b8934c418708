package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewConfig struct {
	Function string `json:"function" validate:"required"`
	Timeout  int    `json:"timeout" validate:"gte=0,lte=300"`
	Object   string `json:"object" validate:"omitempty,oneof=partner company"`
}

func TestValidateConfig_Valid(t *testing.T) {
	config := Config{
		"function": "review_partner",
		"timeout":  float64(30),
		"object":   "partner",
	}

	var target reviewConfig
	require.NoError(t, ValidateConfig(config, &target))
	assert.Equal(t, "review_partner", target.Function)
	assert.Equal(t, 30, target.Timeout)
}

func TestValidateConfig_MissingRequired(t *testing.T) {
	config := Config{"timeout": float64(30)}

	var target reviewConfig
	err := ValidateConfig(config, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "Function")
}

func TestValidateConfig_OutOfRange(t *testing.T) {
	config := Config{
		"function": "review_partner",
		"timeout":  float64(900),
	}

	var target reviewConfig
	err := ValidateConfig(config, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Timeout")
}

func TestValidatorFor(t *testing.T) {
	validate := ValidatorFor(func() interface{} { return &reviewConfig{} })

	require.NoError(t, validate(map[string]interface{}{
		"function": "review_partner",
		"timeout":  float64(30),
	}))

	err := validate(map[string]interface{}{"timeout": float64(30)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Function")

	// each call decodes into a fresh struct, so earlier configs do not
	// leak into later ones
	err = validate(map[string]interface{}{"timeout": float64(30)})
	require.Error(t, err)
}

func TestValidateConfig_WrongType(t *testing.T) {
	config := Config{
		"function": "review_partner",
		"timeout":  "soon",
	}

	var target reviewConfig
	err := ValidateConfig(config, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config into struct")
}
