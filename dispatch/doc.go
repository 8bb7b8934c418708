// Package dispatch provides the host-function layer guests call through.
//
// A Registry is an immutable collection of named byte handlers; each
// handler accepts and returns JSON so any transport that can move bytes
// (the wazero adapter, tests) can dispatch calls without knowing the
// request shapes. Typed handlers are wrapped with NewJSONHandler, and
// cross-cutting behavior (panic recovery, logging) is layered on with
// middleware.
package dispatch
