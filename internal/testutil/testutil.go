// Package testutil provides shared fixtures for SDK tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// SampleSchema returns the partner schema most tests exercise: a mix of
// mutable and read-only properties across all four property types.
func SampleSchema() entities.Schema {
	return entities.Schema{
		Object: "partner",
		Properties: []entities.PropertyDescriptor{
			{Name: "id", Type: entities.TypeInteger, Mutable: false},
			{Name: "name", Type: entities.TypeString, Mutable: true},
			{Name: "is_company", Type: entities.TypeBoolean, Mutable: true},
			{Name: "created_at", Type: entities.TypeTimestamp, Mutable: false},
			{Name: "state", Type: entities.TypeString, Mutable: true},
		},
	}
}

// FakeRecord is an in-memory HostRecord double that records every Set so
// tests can assert the mutation order.
type FakeRecord struct {
	Fields map[string]any
	Sets   []string
}

// NewFakeRecord copies the fields into a fresh double.
func NewFakeRecord(fields map[string]any) *FakeRecord {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &FakeRecord{Fields: copied}
}

func (r *FakeRecord) Get(name string) (any, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

func (r *FakeRecord) Set(name string, value any) error {
	r.Fields[name] = value
	r.Sets = append(r.Sets, name)
	return nil
}

// AssertErrorType requires err to be an *entities.ErrorDetail of the
// given type.
func AssertErrorType(t *testing.T, err error, errType string) {
	t.Helper()
	require.Error(t, err)
	detail := entities.ToErrorDetail(err)
	require.NotNil(t, detail)
	assert.Equal(t, errType, detail.Type)
}
