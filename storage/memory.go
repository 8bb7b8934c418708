// Package storage provides host-side record containers: an in-memory
// implementation for tests and small hosts, and a sqlite-backed store in
// the sqlite subpackage.
package storage

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/ports"
)

// Record is an in-memory host record. Fields must be created through
// NewRecord; Set refuses names that were not declared at construction,
// matching the bridge rule that writes never create properties.
type Record struct {
	mu     sync.RWMutex
	fields map[string]any
}

// NewRecord creates a Record with the given initial field values.
func NewRecord(fields map[string]any) *Record {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &Record{fields: copied}
}

// Get returns the host-native value of a field.
func (r *Record) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.fields[name]
	return v, ok
}

// Set replaces the value of an existing field.
func (r *Record) Set(name string, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fields[name]; !ok {
		return entities.NewErrorDetail(entities.ErrTypeInternal,
			fmt.Sprintf("record has no field %q", name))
	}
	r.fields[name] = value
	return nil
}

// Store is an in-memory RecordStore that applies domain filters in Go.
type Store struct {
	mu      sync.RWMutex
	records []map[string]any
}

var _ ports.RecordStore = (*Store)(nil)
var _ ports.HostRecord = (*Record)(nil)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Insert adds a record with the given field values.
func (s *Store) Insert(_ context.Context, fields map[string]any) error {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.mu.Lock()
	s.records = append(s.records, copied)
	s.mu.Unlock()
	return nil
}

// Select returns the records matching every clause, in insertion order.
func (s *Store) Select(_ context.Context, clauses []entities.FilterClause) ([]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []map[string]any
	for _, record := range s.records {
		match, err := matches(record, clauses)
		if err != nil {
			return nil, err
		}
		if match {
			copied := make(map[string]any, len(record))
			for k, v := range record {
				copied[k] = v
			}
			out = append(out, copied)
		}
	}
	return out, nil
}

func matches(record map[string]any, clauses []entities.FilterClause) (bool, error) {
	for _, clause := range clauses {
		value, ok := record[clause.Field]
		if !ok {
			return false, nil
		}
		switch clause.Operator {
		case entities.OpEquals:
			if !equalValues(value, clause.Value) {
				return false, nil
			}
		case entities.OpILike:
			needle, okS := clause.Value.(string)
			hay, okH := value.(string)
			if !okS || !okH {
				return false, nil
			}
			if !strings.Contains(strings.ToLower(hay), strings.ToLower(needle)) {
				return false, nil
			}
		case entities.OpIn:
			in, err := containsValue(clause.Value, value)
			if err != nil {
				return false, err
			}
			if !in {
				return false, nil
			}
		default:
			return false, entities.NewErrorDetail(entities.ErrTypeValidation,
				fmt.Sprintf("unsupported operator %q", clause.Operator))
		}
	}
	return true, nil
}

func containsValue(list any, value any) (bool, error) {
	items, ok := list.([]any)
	if !ok {
		return false, entities.NewErrorDetail(entities.ErrTypeValidation,
			"in operator requires a list value")
	}
	for _, item := range items {
		if equalValues(value, item) {
			return true, nil
		}
	}
	return false, nil
}

// equalValues compares typed values the way the sqlite store's typed
// columns do: numeric shapes compare across widths, everything else must
// match in type as well as value. A bool never equals the string "true".
func equalValues(a, b any) bool {
	if an, ok := numericValue(a); ok {
		bn, bok := numericValue(b)
		return bok && an == bn
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	default:
		return reflect.DeepEqual(a, b)
	}
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
