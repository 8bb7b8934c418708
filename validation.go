package sdk

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared across calls; constructing a validator caches
// struct metadata, so one instance serves the whole package.
var validate = validator.New()

// ValidateConfig decodes an invocation config into targetStruct and runs
// its `validate` struct tags. The round trip through JSON applies the
// same decoding rules the wire uses, so a config that validates here
// behaves the same after crossing a runtime boundary.
func ValidateConfig(config Config, targetStruct interface{}) error {
	jsonBytes, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config map: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, targetStruct); err != nil {
		return fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}

	if err := validate.Struct(targetStruct); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// ConfigValidator checks an invocation config before a runtime calls a
// script function. Runtimes accept these as plain functions so they do
// not depend on this package.
type ConfigValidator func(config map[string]interface{}) error

// ValidatorFor builds a ConfigValidator that decodes each config into a
// fresh struct from prototype and validates it. The prototype must
// return a pointer to a struct carrying `validate` tags.
func ValidatorFor(prototype func() interface{}) ConfigValidator {
	return func(config map[string]interface{}) error {
		return ValidateConfig(Config(config), prototype())
	}
}
