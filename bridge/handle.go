package bridge

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/ports"
)

// Handle is an opaque reference to a host-owned record. The script side
// holds only the reference; it never owns or destroys the record. All
// operations check the descriptor table before touching the record and
// fail cleanly once the host releases the handle.
//
// The handle performs no caching and takes no locks of its own: the host
// record is the single source of truth, and callers mutating the same
// handle from multiple goroutines must synchronize externally.
type Handle struct {
	id       string
	schema   entities.Schema
	record   ports.HostRecord
	disposed atomic.Bool
}

// Export wraps a host record in a Handle exposing exactly the properties
// the schema declares.
func Export(schema entities.Schema, record ports.HostRecord) (*Handle, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	if record == nil {
		return nil, entities.NewErrorDetail(entities.ErrTypeValidation, "record is required")
	}
	return &Handle{
		id:     uuid.NewString(),
		schema: schema,
		record: record,
	}, nil
}

// ID returns the handle's opaque identifier. Script runtimes that cannot
// hold Go pointers (the WASM transport) refer to handles by this ID.
func (h *Handle) ID() string {
	return h.id
}

// Schema returns the descriptor table the handle exposes.
func (h *Handle) Schema() entities.Schema {
	return h.schema
}

// Release marks the handle disposed. Only the host calls this; any bridge
// operation afterwards fails with a disposed-handle error. Release is
// idempotent.
func (h *Handle) Release() {
	h.disposed.Store(true)
}

// Released reports whether the host has released the handle.
func (h *Handle) Released() bool {
	return h.disposed.Load()
}

// Read returns the script representation of a declared property.
func (h *Handle) Read(name string) (any, error) {
	desc, err := h.descriptor(name)
	if err != nil {
		return nil, err
	}
	host, ok := h.record.Get(name)
	if !ok {
		// Declared but missing on the record; the schema is authoritative
		// for what may be read, the record for what exists.
		return nil, entities.ErrUnknownProperty(h.schema.Object, name)
	}
	return ToScript(desc.Type, host)
}

// Write converts a script-side value to host representation and commits it
// in place on the host record. The change is immediately visible to every
// other holder of the handle; there is no buffering and no transaction.
func (h *Handle) Write(name string, value any) error {
	desc, err := h.descriptor(name)
	if err != nil {
		return err
	}
	if !desc.Mutable {
		return entities.ErrReadOnlyProperty(h.schema.Object, name)
	}
	host, err := ToHost(desc.Type, value)
	if err != nil {
		return err
	}
	return h.record.Set(name, host)
}

// Snapshot reads every declared property in declaration order and returns
// them in script representation. Without intervening writes two snapshots
// are identical.
func (h *Handle) Snapshot() (map[string]any, error) {
	if h.Released() {
		return nil, entities.ErrDisposedHandle(h.id)
	}
	out := make(map[string]any, len(h.schema.Properties))
	for _, desc := range h.schema.Properties {
		host, ok := h.record.Get(desc.Name)
		if !ok {
			return nil, entities.ErrUnknownProperty(h.schema.Object, desc.Name)
		}
		value, err := ToScript(desc.Type, host)
		if err != nil {
			return nil, err
		}
		out[desc.Name] = value
	}
	return out, nil
}

// descriptor resolves the declared descriptor for a property name, after
// the disposal check shared by every operation.
func (h *Handle) descriptor(name string) (entities.PropertyDescriptor, error) {
	if h.Released() {
		return entities.PropertyDescriptor{}, entities.ErrDisposedHandle(h.id)
	}
	desc, ok := h.schema.Descriptor(name)
	if !ok {
		return entities.PropertyDescriptor{}, entities.ErrUnknownProperty(h.schema.Object, name)
	}
	return desc, nil
}
