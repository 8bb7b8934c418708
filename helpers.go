package sdk

import (
	"fmt"
	"math"
	"time"
)

// Config accessors follow the bridge's property value rules: integers
// accept the shapes JSON decoding yields but reject fractional numbers,
// and timestamps accept either time.Time or an RFC 3339 string.

// GetString returns the string under key. The second return reports
// whether the key exists and holds a string.
func GetString(config Config, key string) (string, bool) {
	s, ok := config[key].(string)
	return s, ok
}

// GetInt returns the integer under key in the host integer form, int64.
// int, int32, int64 and integral float64 all qualify; a fractional
// number does not.
func GetInt(config Config, key string) (int64, bool) {
	switch n := config[key].(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// GetBool returns the boolean under key.
func GetBool(config Config, key string) (bool, bool) {
	b, ok := config[key].(bool)
	return b, ok
}

// GetTime returns the timestamp under key. A time.Time passes through
// unchanged; a string must parse as RFC 3339.
func GetTime(config Config, key string) (time.Time, bool) {
	switch v := config[key].(type) {
	case time.Time:
		return v, true
	case string:
		ts, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	default:
		return time.Time{}, false
	}
}

// GetStringSlice returns the string list under key. JSON arrays decode
// as []interface{}; every element must be a string.
func GetStringSlice(config Config, key string) ([]string, bool) {
	arr, ok := config[key].([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// MustGetString returns the string under key or a ConfigError when the
// key is missing or holds another type.
func MustGetString(config Config, key string) (string, error) {
	s, ok := GetString(config, key)
	if !ok {
		return "", requiredFieldError(key, "string")
	}
	return s, nil
}

// MustGetInt returns the integer under key or a ConfigError.
func MustGetInt(config Config, key string) (int64, error) {
	n, ok := GetInt(config, key)
	if !ok {
		return 0, requiredFieldError(key, "integer")
	}
	return n, nil
}

// MustGetBool returns the boolean under key or a ConfigError.
func MustGetBool(config Config, key string) (bool, error) {
	b, ok := GetBool(config, key)
	if !ok {
		return false, requiredFieldError(key, "boolean")
	}
	return b, nil
}

// MustGetTime returns the timestamp under key or a ConfigError.
func MustGetTime(config Config, key string) (time.Time, error) {
	ts, ok := GetTime(config, key)
	if !ok {
		return time.Time{}, requiredFieldError(key, "timestamp")
	}
	return ts, nil
}

func requiredFieldError(key, wantType string) *ConfigError {
	return &ConfigError{
		Field: key,
		Err:   fmt.Errorf("required %s field %q is missing or has the wrong type", wantType, key),
	}
}

// GetStringDefault returns the string under key, or defaultValue when
// the key is missing or holds another type.
func GetStringDefault(config Config, key, defaultValue string) string {
	if s, ok := GetString(config, key); ok {
		return s
	}
	return defaultValue
}

// GetIntDefault returns the integer under key, or defaultValue.
func GetIntDefault(config Config, key string, defaultValue int64) int64 {
	if n, ok := GetInt(config, key); ok {
		return n
	}
	return defaultValue
}

// GetBoolDefault returns the boolean under key, or defaultValue.
func GetBoolDefault(config Config, key string, defaultValue bool) bool {
	if b, ok := GetBool(config, key); ok {
		return b
	}
	return defaultValue
}
