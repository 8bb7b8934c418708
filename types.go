// Package sdk is the public surface of the record bridge SDK. It bundles
// the configuration helpers and re-exports the core domain types so most
// integrations only import this package and the bridge.
package sdk

import (
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// Config represents the configuration passed to a script invocation.
type Config map[string]interface{}

// ErrorDetail is re-exported from entities for convenience.
// Error Types: "unknown_property", "read_only_property", "type_coercion",
// "disposed_handle", "validation", "internal"
type ErrorDetail = entities.ErrorDetail

// Result is re-exported from entities for convenience.
type Result = entities.Result

// Schema is re-exported from entities for convenience.
type Schema = entities.Schema

// PropertyDescriptor is re-exported from entities for convenience.
type PropertyDescriptor = entities.PropertyDescriptor

// ToErrorDetail converts a Go error to a structured ErrorDetail,
// preserving an existing ErrorDetail when the error already is one.
func ToErrorDetail(err error) *ErrorDetail {
	return entities.ToErrorDetail(err)
}

// Success creates a successful Result with data.
func Success(data map[string]interface{}) Result {
	return entities.ResultSuccess("", data)
}

// Failure creates a failed Result with a message.
func Failure(message string) Result {
	return entities.ResultFailure(message, nil)
}

// Error creates an errored Result carrying structured detail.
func Error(errType, message string) Result {
	return entities.ResultError(entities.NewErrorDetail(errType, message))
}

// ConfigError reports a missing or mistyped configuration field.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "config field " + e.Field + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

const (
	// Version of the SDK
	Version = "0.1.0"
)
