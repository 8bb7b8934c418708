package host

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/recordbridge-dev/recordbridge-sdk/go/dispatch"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/ports"
	wazeroadapter "github.com/recordbridge-dev/recordbridge-sdk/go/infrastructure/wazero"
)

// Executor manages the lifecycle of WASM extensions.
type Executor struct {
	runtime  wazero.Runtime
	registry *dispatch.Registry
	config   Config
}

// NewExecutor creates a new executor with the given options. Host
// functions from the configured registry are exported to every extension
// the executor loads.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{config: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		reg, err := dispatch.NewRegistry()
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	err := wazeroadapter.RegisterWithRuntime(ctx, rt, e.registry,
		wazeroadapter.WithModuleName(e.config.ModuleName),
		wazeroadapter.WithMaxRequestSize(e.config.MaxRequestSize),
	)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// ExtensionInstance represents an instantiated WASM extension.
type ExtensionInstance struct {
	module api.Module
}

var _ ports.ScriptRuntime = (*ExtensionInstance)(nil)

// LoadExtension instantiates a WASM module.
func (e *Executor) LoadExtension(ctx context.Context, wasmBytes []byte) (*ExtensionInstance, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return &ExtensionInstance{module: mod}, nil
}

// Name identifies the runtime.
func (p *ExtensionInstance) Name() string {
	return "wasm"
}

// Close releases the extension's module.
func (p *ExtensionInstance) Close(ctx context.Context) error {
	return p.module.Close(ctx)
}

// Describe calls the "describe" export of the extension and returns its
// self-reported metadata.
func (p *ExtensionInstance) Describe(ctx context.Context) (map[string]any, error) {
	packed, err := p.callRaw(ctx, "describe", nil)
	if err != nil {
		return nil, err
	}
	var metadata map[string]any
	if err := p.unmarshalPacked(packed, &metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

// Call invokes a named export with a configuration map and decodes the
// structured Result it returns.
func (p *ExtensionInstance) Call(ctx context.Context, fn string, config map[string]any) (entities.Result, error) {
	configBytes, err := json.Marshal(config)
	if err != nil {
		return entities.Result{}, err
	}

	start := time.Now()
	packed, err := p.callRaw(ctx, fn, configBytes)
	if err != nil {
		return entities.Result{}, err
	}

	var result entities.Result
	if err := p.unmarshalPacked(packed, &result); err != nil {
		return entities.Result{}, err
	}
	result = result.WithMetadata(entities.NewRunMetadata(start, time.Now()).WithRuntime(p.Name()))
	return result, nil
}

func (p *ExtensionInstance) callRaw(ctx context.Context, name string, input []byte) (uint64, error) {
	f := p.module.ExportedFunction(name)
	if f == nil {
		return 0, fmt.Errorf("export %q not found", name)
	}

	var results []uint64
	var err error

	if len(input) == 0 {
		results, err = f.Call(ctx)
	} else {
		allocate := p.module.ExportedFunction("allocate")
		if allocate == nil {
			return 0, fmt.Errorf("guest does not export 'allocate'")
		}
		resAlloc, errAlloc := allocate.Call(ctx, uint64(len(input)))
		if errAlloc != nil {
			return 0, fmt.Errorf("failed to allocate in guest: %w", errAlloc)
		}
		if len(resAlloc) == 0 {
			return 0, fmt.Errorf("allocate returned no results")
		}
		ptr := uint32(resAlloc[0])
		if !p.module.Memory().Write(ptr, input) {
			return 0, fmt.Errorf("failed to write input to guest memory")
		}
		results, err = f.Call(ctx, uint64(ptr), uint64(len(input)))
	}

	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0], nil
}

func (p *ExtensionInstance) unmarshalPacked(packed uint64, v any) error {
	ptr := uint32(packed >> 32)
	length := uint32(packed)
	if ptr == 0 || length == 0 {
		return fmt.Errorf("null response from extension")
	}
	data, ok := p.module.Memory().Read(ptr, length)
	if !ok {
		return fmt.Errorf("failed to read response from memory")
	}
	return json.Unmarshal(data, v)
}
