// Package lua exposes the bridge and the declarative engine to an
// embedded Lua runtime. Handles become userdata whose property reads and
// writes go through the bridge's descriptor checks; the filter, workflow,
// and computed-field engines are published as globals.
package lua

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	lua "github.com/Shopify/go-lua"

	"github.com/recordbridge-dev/recordbridge-sdk/go/bridge"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/ports"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/query"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/workflow"
)

const recordTypeName = "record"

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger scripts write to through the Log global.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConfigValidator registers a validator that every Call to fn runs
// against its config before the script executes. A failing validator
// turns into a validation-typed Result error; the script never runs.
func WithConfigValidator(fn string, validate func(config map[string]any) error) Option {
	return func(r *Runtime) {
		if validate != nil {
			r.validators[fn] = validate
		}
	}
}

// Runtime is an in-process Lua script runtime with the bridge and engine
// registered. It is not safe for concurrent use; a Runtime owns one Lua
// state.
type Runtime struct {
	state      *lua.State
	logger     *slog.Logger
	validators map[string]func(config map[string]any) error
}

var _ ports.ScriptRuntime = (*Runtime)(nil)

// NewRuntime creates a Lua runtime with the standard libraries open and
// the record metatable and engine globals registered.
func NewRuntime(opts ...Option) *Runtime {
	r := &Runtime{
		state:      lua.NewState(),
		logger:     slog.Default(),
		validators: make(map[string]func(config map[string]any) error),
	}
	for _, opt := range opts {
		opt(r)
	}
	lua.OpenLibraries(r.state)
	r.registerRecordType()
	r.registerEngine()
	r.registerLog()
	return r
}

// Name identifies the runtime.
func (r *Runtime) Name() string {
	return "lua"
}

// Close releases the runtime. The Lua state has no external resources;
// Close exists to satisfy the ScriptRuntime port.
func (r *Runtime) Close(context.Context) error {
	r.state = nil
	return nil
}

// Bind exposes a handle to scripts as a global variable. Property access
// on the global goes through the bridge: reads return script
// representations, writes commit to the host record in place.
func (r *Runtime) Bind(name string, h *bridge.Handle) {
	r.state.PushUserData(h)
	lua.SetMetaTableNamed(r.state, recordTypeName)
	r.state.SetGlobal(name)
}

// Run executes a script in the runtime's global environment.
func (r *Runtime) Run(script string) error {
	if err := lua.LoadString(r.state, script); err != nil {
		return fmt.Errorf("load lua: %w", err)
	}
	if err := r.state.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run lua: %w", err)
	}
	return nil
}

// Invoke calls a named global script function. Arguments may be plain Go
// values or *bridge.Handle, which crosses as record userdata. The single
// return value comes back as a Go value.
func (r *Runtime) Invoke(_ context.Context, fn string, args ...any) (any, error) {
	r.state.Global(fn)
	if !r.state.IsFunction(-1) {
		r.state.Pop(1)
		return nil, fmt.Errorf("lua function %q is not defined", fn)
	}
	for i, arg := range args {
		if h, ok := arg.(*bridge.Handle); ok {
			r.state.PushUserData(h)
			lua.SetMetaTableNamed(r.state, recordTypeName)
			continue
		}
		if err := pushValue(r.state, arg); err != nil {
			r.state.Pop(i + 1)
			return nil, err
		}
	}
	if err := r.state.ProtectedCall(len(args), 1, 0); err != nil {
		return nil, fmt.Errorf("call %s: %w", fn, err)
	}
	result := toGoValue(r.state, -1)
	r.state.Pop(1)
	return result, nil
}

// Call invokes a named script function with a configuration map and wraps
// the outcome as a structured Result. Script-level failures surface
// through the Result; the error return is reserved for runtime failures
// such as an undefined function.
func (r *Runtime) Call(ctx context.Context, fn string, config map[string]any) (entities.Result, error) {
	start := time.Now()

	if validate, ok := r.validators[fn]; ok {
		if err := validate(config); err != nil {
			metadata := entities.NewRunMetadata(start, time.Now()).WithRuntime(r.Name())
			detail := entities.NewErrorDetail(entities.ErrTypeValidation, err.Error())
			return entities.ResultError(detail).WithMetadata(metadata), nil
		}
	}

	value, err := r.Invoke(ctx, fn, config)
	metadata := entities.NewRunMetadata(start, time.Now()).WithRuntime(r.Name())

	if err != nil {
		detail := entities.NewErrorDetail(entities.ErrTypeInternal, err.Error())
		return entities.ResultError(detail).WithMetadata(metadata), nil
	}

	switch v := value.(type) {
	case map[string]any:
		return entities.ResultSuccess("", v).WithMetadata(metadata), nil
	case bool:
		// Validation-style callbacks signal pass/fail with a bare boolean.
		if v {
			return entities.ResultSuccess("", nil).WithMetadata(metadata), nil
		}
		return entities.ResultFailure("script returned false", nil).WithMetadata(metadata), nil
	default:
		return entities.ResultSuccess("", map[string]any{"value": v}).WithMetadata(metadata), nil
	}
}

// registerRecordType installs the record metatable. __index and
// __newindex route property access through the bridge, so every check the
// bridge performs (declared property, mutability, coercion, disposal)
// applies to script access too.
func (r *Runtime) registerRecordType() {
	lua.NewMetaTable(r.state, recordTypeName)
	r.state.PushGoFunction(recordIndex)
	r.state.SetField(-2, "__index")
	r.state.PushGoFunction(recordNewIndex)
	r.state.SetField(-2, "__newindex")
	r.state.Pop(1)
}

func checkHandle(state *lua.State) *bridge.Handle {
	ud := lua.CheckUserData(state, 1, recordTypeName)
	if h, ok := ud.(*bridge.Handle); ok && h != nil {
		return h
	}
	lua.ArgumentError(state, 1, "record expected")
	return nil
}

func recordIndex(state *lua.State) int {
	h := checkHandle(state)
	name := lua.CheckString(state, 2)
	value, err := h.Read(name)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	if err := pushValue(state, value); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	return 1
}

func recordNewIndex(state *lua.State) int {
	h := checkHandle(state)
	name := lua.CheckString(state, 2)
	value := toGoValue(state, 3)
	if err := h.Write(name, value); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	return 0
}

// registerEngine publishes the declarative engine as the Records, Domain,
// Workflow, and Computed globals.
func (r *Runtime) registerEngine() {
	r.state.NewTable()
	r.state.PushGoFunction(recordSnapshot)
	r.state.SetField(-2, "snapshot")
	r.state.SetGlobal("Records")

	r.state.NewTable()
	r.state.PushGoFunction(domainFilter)
	r.state.SetField(-2, "filter")
	r.state.SetGlobal("Domain")

	r.state.NewTable()
	r.state.PushGoFunction(workflowResolve)
	r.state.SetField(-2, "resolve")
	r.state.SetGlobal("Workflow")

	r.state.NewTable()
	r.state.PushGoFunction(computedFields)
	r.state.SetField(-2, "fields")
	r.state.SetGlobal("Computed")
}

func recordSnapshot(state *lua.State) int {
	h := checkHandle(state)
	snapshot, err := h.Snapshot()
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	props := make(map[string]any, len(snapshot))
	for k, v := range snapshot {
		props[k] = v
	}
	if err := pushValue(state, props); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	return 1
}

func domainFilter(state *lua.State) int {
	lua.CheckType(state, 1, lua.TypeTable)
	criteria := tableToMap(state, 1)
	clauses, err := query.BuildDomainFilter(criteria)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	out := make([]any, len(clauses))
	for i, clause := range clauses {
		out[i] = map[string]any{
			"field":    clause.Field,
			"operator": string(clause.Operator),
			"value":    clause.Value,
		}
	}
	if err := pushValue(state, out); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	return 1
}

func workflowResolve(state *lua.State) int {
	action := lua.CheckString(state, 1)
	transition := workflow.ResolveAction(action)
	result := map[string]any{
		"action":  transition.Action,
		"success": transition.Success,
	}
	if transition.Success {
		result["new_state"] = transition.NewState
	}
	if err := pushValue(state, result); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	return 1
}

func computedFields(state *lua.State) int {
	specs := query.ComputedFields()
	out := make(map[string]any, len(specs))
	for name, spec := range specs {
		depends := make([]any, len(spec.Depends))
		for i, dep := range spec.Depends {
			depends[i] = dep
		}
		out[name] = map[string]any{"depends": depends}
	}
	if err := pushValue(state, out); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	return 1
}

// registerLog publishes Log.debug/info/warn/error backed by slog.
func (r *Runtime) registerLog() {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	r.state.NewTable()
	for name, level := range levels {
		lvl := level
		r.state.PushGoFunction(func(state *lua.State) int {
			msg := lua.CheckString(state, 1)
			r.logger.Log(context.Background(), lvl, msg, "runtime", r.Name())
			return 0
		})
		r.state.SetField(-2, name)
	}
	r.state.SetGlobal("Log")
}
