package ports

import (
	"context"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// HostRecord is a host-owned record whose properties can be bridged.
// Values are host-native: string, int64, bool, time.Time. The host owns
// the record's storage and lifetime; the bridge only mediates access.
type HostRecord interface {
	// Get returns the host-native value of a property and whether it exists.
	Get(name string) (any, bool)

	// Set replaces the host-native value of an existing property.
	// It must not create properties; setting an undeclared name is an error.
	Set(name string, value any) error
}

// RecordStore executes domain filters against a backing collection of
// records. It is the external query executor the filter engine produces
// clauses for.
type RecordStore interface {
	// Select returns the records matching every clause, in store order.
	Select(ctx context.Context, clauses []entities.FilterClause) ([]map[string]any, error)

	// Insert adds a record with the given field values.
	Insert(ctx context.Context, fields map[string]any) error
}
