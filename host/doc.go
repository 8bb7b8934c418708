// Package host provides the runtime environment for executing WASM
// extensions against the record bridge.
//
// It abstracts the underlying WASM engine (wazero), manages extension
// lifecycle, and handles the low-level ABI interactions (memory
// allocation, data packing and unpacking). Host functions registered
// through the dispatch registry become importable by every loaded
// extension.
package host
