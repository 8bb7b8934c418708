// Package entities provides core domain entities for the SDK.
// These are general-purpose types used across all SDK operations.
// Runtime-specific concerns (Lua userdata, WASM memory framing) belong
// in the infrastructure adapters.
package entities
