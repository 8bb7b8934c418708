package sqlite

import (
	"context"
	"fmt"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/ports"
)

// Record is a HostRecord over one row of a Store. Writes update the row
// immediately, keyed by the schema's id property.
type Record struct {
	store  *Store
	id     any
	fields map[string]any
}

var _ ports.HostRecord = (*Record)(nil)

// NewRecord wraps a row previously returned by Select. The fields must
// include the id property so writes can target the row.
func NewRecord(store *Store, schema entities.Schema, fields map[string]any) (*Record, error) {
	if _, ok := schema.Descriptor("id"); !ok {
		return nil, entities.NewErrorDetail(entities.ErrTypeValidation,
			fmt.Sprintf("schema %s declares no id property", schema.Object))
	}
	id, ok := fields["id"]
	if !ok {
		return nil, entities.NewErrorDetail(entities.ErrTypeValidation,
			fmt.Sprintf("row of %s is missing its id", schema.Object))
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &Record{store: store, id: id, fields: copied}, nil
}

// Get returns the cached column value for the named property.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Set updates the row and the cached value. The caller has already passed
// the bridge's descriptor checks, so undeclared names indicate host
// misuse and fail on the database side.
func (r *Record) Set(name string, value any) error {
	stmt := fmt.Sprintf("UPDATE %s SET %s = ? WHERE id = ?", r.store.schema.Object, name)
	if _, err := r.store.db.ExecContext(context.Background(), stmt, toColumn(value), toColumn(r.id)); err != nil {
		return fmt.Errorf("update %s.%s: %w", r.store.schema.Object, name, err)
	}
	r.fields[name] = value
	return nil
}
