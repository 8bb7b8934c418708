// Package ports defines interfaces for infrastructure operations.
// These ports enable dependency inversion - the bridge and engines depend
// on abstractions, and host-side adapters implement them.
package ports
