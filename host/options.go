package host

import (
	"github.com/recordbridge-dev/recordbridge-sdk/go/dispatch"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithHostFunctions configures the executor with a host function registry.
func WithHostFunctions(registry *dispatch.Registry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithConfig replaces the executor configuration.
func WithConfig(cfg Config) Option {
	return func(e *Executor) {
		e.config = cfg
	}
}
