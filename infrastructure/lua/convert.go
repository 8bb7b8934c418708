package lua

import (
	"fmt"
	"math"

	lua "github.com/Shopify/go-lua"
)

// maxExactInteger is the largest int64 a float64 holds without rounding.
const maxExactInteger = int64(1) << 53

// pushValue pushes a Go value onto the Lua stack. Supported shapes are the
// script representations the bridge produces plus the containers JSON
// decoding yields.
func pushValue(state *lua.State, value any) error {
	switch v := value.(type) {
	case nil:
		state.PushNil()
	case bool:
		state.PushBoolean(v)
	case string:
		state.PushString(v)
	case int:
		return pushValue(state, int64(v))
	case int64:
		// Lua has a single float64 number type; integers beyond 2^53
		// would round and then write back a different value.
		if v > maxExactInteger || v < -maxExactInteger {
			return fmt.Errorf("integer %d cannot be represented exactly as a lua number", v)
		}
		state.PushNumber(float64(v))
	case float64:
		state.PushNumber(v)
	case map[string]any:
		state.NewTable()
		for key, item := range v {
			if err := pushValue(state, item); err != nil {
				return err
			}
			state.SetField(-2, key)
		}
	case []any:
		state.NewTable()
		for i, item := range v {
			if err := pushValue(state, item); err != nil {
				return err
			}
			state.RawSetInt(-2, i+1)
		}
	default:
		return fmt.Errorf("cannot push %T into lua", value)
	}
	return nil
}

// toGoValue converts the Lua value at index into a Go value. Numbers
// without a fractional part become int64 so integer properties survive
// the trip through Lua's single number type.
func toGoValue(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	case lua.TypeUserData:
		return state.ToUserData(index)
	default:
		return nil
	}
}

// tableToMap converts a Lua table with string keys into a Go map.
func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = toGoValue(state, -1)
		}
		state.Pop(1)
	}
	return output
}

// tableToGo converts a Lua table into either a []any (contiguous 1-based
// integer keys) or a map[string]any.
func tableToGo(state *lua.State, index int) any {
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, toGoValue(state, -1))
			state.Pop(1)
		}
		return result
	}

	return tableToMap(state, index)
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int64(value)
	}
	return value
}
