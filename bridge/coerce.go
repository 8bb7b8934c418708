package bridge

import (
	"fmt"
	"math"
	"time"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// Script representations per declared type:
//
//	string    -> string
//	integer   -> int64
//	boolean   -> bool
//	timestamp -> RFC 3339 string (nanosecond precision)
//
// The timestamp string form is chosen because it survives the JSON wire
// and the Lua value space unchanged, and round-trips to time.Time without
// loss. Both directions of every codec are total over the values the other
// direction produces, so write-then-read returns an equal value.

// codec converts one property type between host and script representations.
type codec struct {
	toScript func(host any) (any, error)
	toHost   func(script any) (any, error)
}

// codecs is the fixed coercion table keyed by declared property type.
var codecs = map[entities.PropertyType]codec{
	entities.TypeString: {
		toScript: func(host any) (any, error) {
			s, ok := host.(string)
			if !ok {
				return nil, coercionErr(host, entities.TypeString)
			}
			return s, nil
		},
		toHost: func(script any) (any, error) {
			s, ok := script.(string)
			if !ok {
				return nil, coercionErr(script, entities.TypeString)
			}
			return s, nil
		},
	},
	entities.TypeInteger: {
		toScript: func(host any) (any, error) {
			return toInt64(host, entities.TypeInteger)
		},
		toHost: func(script any) (any, error) {
			return toInt64(script, entities.TypeInteger)
		},
	},
	entities.TypeBoolean: {
		toScript: func(host any) (any, error) {
			b, ok := host.(bool)
			if !ok {
				return nil, coercionErr(host, entities.TypeBoolean)
			}
			return b, nil
		},
		toHost: func(script any) (any, error) {
			b, ok := script.(bool)
			if !ok {
				return nil, coercionErr(script, entities.TypeBoolean)
			}
			return b, nil
		},
	},
	entities.TypeTimestamp: {
		toScript: func(host any) (any, error) {
			t, ok := host.(time.Time)
			if !ok {
				return nil, coercionErr(host, entities.TypeTimestamp)
			}
			return t.Format(time.RFC3339Nano), nil
		},
		toHost: func(script any) (any, error) {
			switch v := script.(type) {
			case time.Time:
				return v, nil
			case string:
				t, err := time.Parse(time.RFC3339Nano, v)
				if err != nil {
					return nil, coercionErr(script, entities.TypeTimestamp)
				}
				return t, nil
			default:
				return nil, coercionErr(script, entities.TypeTimestamp)
			}
		},
	},
}

// ToScript converts a host-native value to its script representation for
// the declared type.
func ToScript(t entities.PropertyType, host any) (any, error) {
	c, ok := codecs[t]
	if !ok {
		return nil, entities.ErrTypeCoercionFailed(typeName(host), string(t))
	}
	return c.toScript(host)
}

// ToHost converts a script-side value to its host representation for the
// declared type.
func ToHost(t entities.PropertyType, script any) (any, error) {
	c, ok := codecs[t]
	if !ok {
		return nil, entities.ErrTypeCoercionFailed(typeName(script), string(t))
	}
	return c.toHost(script)
}

// toInt64 accepts the integer shapes produced by Go hosts, JSON decoding,
// and Lua numbers. Floats are accepted only when integral.
func toInt64(v any, want entities.PropertyType) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint32:
		return int64(n), nil
	case float64:
		if math.Mod(n, 1) != 0 {
			return nil, coercionErr(v, want)
		}
		return int64(n), nil
	default:
		return nil, coercionErr(v, want)
	}
}

func coercionErr(value any, want entities.PropertyType) error {
	return entities.ErrTypeCoercionFailed(typeName(value), string(want))
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
