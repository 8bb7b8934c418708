package dispatch

import "context"

// CallContext wraps a context.Context with call-scoped helpers. Middleware
// can read the invoked function name and stash values without allocating
// new context layers per call.
type CallContext interface {
	context.Context

	// FunctionName returns the name of the host function being invoked.
	FunctionName() string

	// SetValue stores a call-scoped value. Unlike context.WithValue this
	// mutates the existing CallContext.
	SetValue(key, value any)

	// GetValue retrieves a call-scoped value set by SetValue.
	GetValue(key any) (value any, ok bool)
}

type callContext struct {
	context.Context
	values   map[any]any
	funcName string
}

// NewCallContext creates a CallContext wrapping the given context.
func NewCallContext(ctx context.Context, funcName string) CallContext {
	return &callContext{
		Context:  ctx,
		funcName: funcName,
		values:   make(map[any]any),
	}
}

func (c *callContext) FunctionName() string {
	return c.funcName
}

func (c *callContext) SetValue(key, value any) {
	c.values[key] = value
}

func (c *callContext) GetValue(key any) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// CallContextFrom extracts a CallContext from a context.Context, creating
// one if the context is not already call-scoped.
func CallContextFrom(ctx context.Context, funcName string) CallContext {
	if cc, ok := ctx.(CallContext); ok {
		return cc
	}
	return NewCallContext(ctx, funcName)
}
