package bridge

import (
	"sort"
	"sync"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// Table maps handle IDs to live handles for transports that pass handles
// by ID instead of by pointer. The host registers a handle before exposing
// its ID to a guest and removes it when the record's lifetime ends.
type Table struct {
	mu      sync.RWMutex
	handles map[string]*Handle
}

// NewTable creates an empty handle table.
func NewTable() *Table {
	return &Table{handles: make(map[string]*Handle)}
}

// Add registers a handle under its ID.
func (t *Table) Add(h *Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handles[h.ID()] = h
}

// Resolve returns the handle for an ID. A missing or released handle
// resolves to a disposed-handle error: from the guest's point of view
// both mean the host no longer backs the reference.
func (t *Table) Resolve(id string) (*Handle, error) {
	t.mu.RLock()
	h, ok := t.handles[id]
	t.mu.RUnlock()
	if !ok {
		return nil, entities.ErrDisposedHandle(id)
	}
	return h, nil
}

// Remove releases the handle and drops it from the table.
func (t *Table) Remove(id string) {
	t.mu.Lock()
	h, ok := t.handles[id]
	delete(t.handles, id)
	t.mu.Unlock()
	if ok {
		h.Release()
	}
}

// IDs returns the registered handle IDs in sorted order.
func (t *Table) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]string, 0, len(t.handles))
	for id := range t.handles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
