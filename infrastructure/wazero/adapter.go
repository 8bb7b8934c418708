// Package wazero registers bridge host functions with a wazero runtime so
// WASM guests can call them over the packed i64 ptr+len convention.
package wazero

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/recordbridge-dev/recordbridge-sdk/go/dispatch"
)

// AdapterConfig holds configuration for the wazero adapter.
type AdapterConfig struct {
	// ModuleName is the host module name (default: "bridge_host").
	ModuleName string

	// MaxRequestSize limits the size of incoming requests from guest memory.
	// Default is 1MB.
	MaxRequestSize uint32

	// CustomHandlers allows adding additional wazero-specific handlers that
	// don't fit the standard ByteHandler pattern.
	CustomHandlers []CustomHandler
}

// CustomHandler represents a custom wazero handler that doesn't use the
// standard packed i64 request/response pattern.
type CustomHandler struct {
	// Name is the exported function name.
	Name string

	// Handler is the wazero GoModuleFunc implementation.
	Handler api.GoModuleFunc

	// ParamTypes are the WASM parameter types.
	ParamTypes []api.ValueType

	// ResultTypes are the WASM result types.
	ResultTypes []api.ValueType
}

// AdapterOption configures the adapter.
type AdapterOption func(*AdapterConfig)

// WithModuleName sets the host module name (default: "bridge_host").
func WithModuleName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		c.ModuleName = name
	}
}

// WithMaxRequestSize sets the maximum request size from guest memory.
func WithMaxRequestSize(size uint32) AdapterOption {
	return func(c *AdapterConfig) {
		c.MaxRequestSize = size
	}
}

// WithCustomHandler adds a custom wazero handler.
func WithCustomHandler(h CustomHandler) AdapterOption {
	return func(c *AdapterConfig) {
		c.CustomHandlers = append(c.CustomHandlers, h)
	}
}

// defaultAdapterConfig returns the default adapter configuration.
func defaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		ModuleName:     "bridge_host",
		MaxRequestSize: dispatch.DefaultMaxRequestSize,
	}
}

// RegisterWithRuntime registers all handlers from a Registry with a wazero
// runtime. This creates a host module with the configured name (default:
// "bridge_host") and exports every handler in the registry.
//
// Each handler is wrapped to:
//   - Read request bytes from guest memory using the packed i64 ptr+len format
//   - Invoke the ByteHandler with the request payload
//   - Allocate response memory in the guest using the "allocate" export
//   - Write response bytes to guest memory
//   - Return packed i64 ptr+len of the response
//
// Example:
//
//	registry, _ := dispatch.NewRegistry(
//	    dispatch.WithBundle(dispatch.AllBundles(table, logger)),
//	)
//	err := wazero.RegisterWithRuntime(ctx, runtime, registry,
//	    wazero.WithModuleName("bridge_host"),
//	)
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, registry *dispatch.Registry, opts ...AdapterOption) error {
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	builder := runtime.NewHostModuleBuilder(cfg.ModuleName)

	for _, name := range registry.Names() {
		funcName := name // capture for closure
		builder.NewFunctionBuilder().
			WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
				handleRegistryCall(ctx, mod, stack, registry, funcName, cfg.MaxRequestSize)
			}), []api.ValueType{api.ValueTypeI64}, []api.ValueType{api.ValueTypeI64}).
			Export(funcName)
	}

	for _, ch := range cfg.CustomHandlers {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(ch.Handler, ch.ParamTypes, ch.ResultTypes).
			Export(ch.Name)
	}

	_, err := builder.Instantiate(ctx)
	return err
}

// handleRegistryCall handles a host function call from WASM. It reads the
// request from guest memory, invokes the handler, and writes the response.
func handleRegistryCall(ctx context.Context, mod api.Module, stack []uint64, registry *dispatch.Registry, name string, maxRequestSize uint32) {
	ptr, length := unpackPtrLen(stack[0])

	if length > maxRequestSize {
		errMsg := fmt.Sprintf("request size %d exceeds maximum %d bytes", length, maxRequestSize)
		slog.ErrorContext(ctx, "wazero: "+errMsg, "function", name)
		stack[0] = writeErrorResponse(ctx, mod, dispatch.NewValidationError(errMsg))
		return
	}

	requestBytes, ok := mod.Memory().Read(ptr, length)
	if !ok {
		errMsg := "failed to read request from guest memory"
		slog.ErrorContext(ctx, "wazero: "+errMsg, "function", name)
		stack[0] = writeErrorResponse(ctx, mod, dispatch.NewInternalError(errMsg))
		return
	}

	responseBytes, err := registry.Invoke(ctx, name, requestBytes)
	if err != nil {
		slog.ErrorContext(ctx, "wazero: handler invocation failed", "function", name, "error", err)
		stack[0] = writeErrorResponse(ctx, mod, dispatch.NewInternalError(err.Error()))
		return
	}

	stack[0] = writeResponse(ctx, mod, responseBytes)
}

// writeResponse allocates memory in the guest and writes the response bytes.
// Returns packed ptr+len or 0 on failure.
func writeResponse(ctx context.Context, mod api.Module, data []byte) uint64 {
	allocateFn := mod.ExportedFunction("allocate")
	if allocateFn == nil {
		slog.ErrorContext(ctx, "wazero: guest module missing 'allocate' export")
		return 0
	}

	results, err := allocateFn.Call(ctx, uint64(len(data)))
	if err != nil {
		slog.ErrorContext(ctx, "wazero: failed to call guest allocate", "error", err)
		return 0
	}
	ptr := uint32(results[0]) //nolint:gosec // G115: WASM32 pointers are always 32-bit

	if !mod.Memory().Write(ptr, data) {
		slog.ErrorContext(ctx, "wazero: failed to write response to guest memory")
		return 0
	}

	return packPtrLen(ptr, uint32(len(data))) //nolint:gosec // G115: Data length is bounded by config
}

// writeErrorResponse writes an error response to guest memory.
func writeErrorResponse(ctx context.Context, mod api.Module, errResp dispatch.ErrorResponse) uint64 {
	return writeResponse(ctx, mod, errResp.ToJSON())
}

// packPtrLen packs a pointer and length into a single i64.
// Upper 32 bits: pointer, lower 32 bits: length.
func packPtrLen(ptr, length uint32) uint64 {
	return (uint64(ptr) << 32) | uint64(length)
}

// unpackPtrLen unpacks a pointer and length from a packed i64.
func unpackPtrLen(packed uint64) (ptr, length uint32) {
	ptr = uint32(packed >> 32)           //nolint:gosec // G115: Packed format stores 32-bit values
	length = uint32(packed & 0xFFFFFFFF) //nolint:gosec // G115: Packed format stores 32-bit values
	return ptr, length
}
