package ports

import (
	"context"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// ScriptRuntime is an execution environment that can invoke named script
// functions with host-supplied arguments. Both the in-process Lua runtime
// and the WASM executor implement this.
type ScriptRuntime interface {
	// Name identifies the runtime (for example "lua" or "wasm").
	Name() string

	// Call invokes a named script function with a configuration map and
	// returns its structured result. Errors raised inside the script are
	// reported through the Result, not the error return; the error return
	// is reserved for runtime-level failures.
	Call(ctx context.Context, fn string, config map[string]any) (entities.Result, error)

	// Close releases the runtime's resources.
	Close(ctx context.Context) error
}
