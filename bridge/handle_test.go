package bridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/internal/testutil"
)

func objectSchema() entities.Schema {
	return entities.Schema{
		Object: "test_object",
		Properties: []entities.PropertyDescriptor{
			{Name: "message", Type: entities.TypeString, Mutable: true},
			{Name: "counter", Type: entities.TypeInteger, Mutable: true},
			{Name: "is_processed", Type: entities.TypeBoolean, Mutable: true},
			{Name: "created_at", Type: entities.TypeTimestamp, Mutable: false},
		},
	}
}

func objectRecord() *testutil.FakeRecord {
	return testutil.NewFakeRecord(map[string]any{
		"message":      "Original",
		"counter":      int64(0),
		"is_processed": false,
		"created_at":   time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	})
}

func TestExport_ValidatesSchema(t *testing.T) {
	_, err := Export(entities.Schema{}, objectRecord())
	testutil.AssertErrorType(t, err, entities.ErrTypeValidation)

	_, err = Export(objectSchema(), nil)
	testutil.AssertErrorType(t, err, entities.ErrTypeValidation)
}

func TestExport_UniqueIDs(t *testing.T) {
	h1, err := Export(objectSchema(), objectRecord())
	require.NoError(t, err)
	h2, err := Export(objectSchema(), objectRecord())
	require.NoError(t, err)
	assert.NotEqual(t, h1.ID(), h2.ID())
}

func TestHandle_WriteThenRead(t *testing.T) {
	h, err := Export(objectSchema(), objectRecord())
	require.NoError(t, err)

	// Script writes cross to the host record and read back equal.
	require.NoError(t, h.Write("counter", int64(42)))
	got, err := h.Read("counter")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	require.NoError(t, h.Write("is_processed", true))
	got, err = h.Read("is_processed")
	require.NoError(t, err)
	assert.Equal(t, true, got)

	require.NoError(t, h.Write("message", "Modified by script"))
	got, err = h.Read("message")
	require.NoError(t, err)
	assert.Equal(t, "Modified by script", got)
}

func TestHandle_WritesVisibleToHost(t *testing.T) {
	record := objectRecord()
	h, err := Export(objectSchema(), record)
	require.NoError(t, err)

	require.NoError(t, h.Write("counter", int64(42)))
	assert.Equal(t, int64(42), record.Fields["counter"])
}

func TestHandle_ReadOnlyWriteNeverMutates(t *testing.T) {
	record := objectRecord()
	h, err := Export(objectSchema(), record)
	require.NoError(t, err)

	original := record.Fields["created_at"]
	err = h.Write("created_at", time.Now().UTC().Format(time.RFC3339Nano))
	testutil.AssertErrorType(t, err, entities.ErrTypeReadOnly)
	assert.Equal(t, original, record.Fields["created_at"])
	assert.Empty(t, record.Sets)
}

func TestHandle_UnknownProperty(t *testing.T) {
	h, err := Export(objectSchema(), objectRecord())
	require.NoError(t, err)

	_, err = h.Read("missing")
	testutil.AssertErrorType(t, err, entities.ErrTypeUnknownProperty)

	err = h.Write("missing", "value")
	testutil.AssertErrorType(t, err, entities.ErrTypeUnknownProperty)
}

func TestHandle_CoercionFailureNeverMutates(t *testing.T) {
	record := objectRecord()
	h, err := Export(objectSchema(), record)
	require.NoError(t, err)

	err = h.Write("counter", "not a number")
	testutil.AssertErrorType(t, err, entities.ErrTypeCoercion)
	assert.Equal(t, int64(0), record.Fields["counter"])
	assert.Empty(t, record.Sets)
}

func TestHandle_Released(t *testing.T) {
	h, err := Export(objectSchema(), objectRecord())
	require.NoError(t, err)
	require.False(t, h.Released())

	h.Release()
	h.Release() // idempotent
	assert.True(t, h.Released())

	_, err = h.Read("message")
	testutil.AssertErrorType(t, err, entities.ErrTypeDisposed)

	err = h.Write("message", "after release")
	testutil.AssertErrorType(t, err, entities.ErrTypeDisposed)

	_, err = h.Snapshot()
	testutil.AssertErrorType(t, err, entities.ErrTypeDisposed)
}

func TestHandle_SnapshotIdempotent(t *testing.T) {
	h, err := Export(objectSchema(), objectRecord())
	require.NoError(t, err)

	first, err := h.Snapshot()
	require.NoError(t, err)
	second, err := h.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, "Original", first["message"])
	assert.Equal(t, int64(0), first["counter"])
	assert.Equal(t, false, first["is_processed"])
	assert.Equal(t, "2024-01-15T09:00:00Z", first["created_at"])
}

func TestHandle_SnapshotScriptRepresentations(t *testing.T) {
	h, err := Export(objectSchema(), objectRecord())
	require.NoError(t, err)

	require.NoError(t, h.Write("counter", int64(42)))
	snapshot, err := h.Snapshot()
	require.NoError(t, err)

	// Timestamps cross as RFC 3339 strings, never as time.Time.
	_, isString := snapshot["created_at"].(string)
	assert.True(t, isString)
	assert.Equal(t, int64(42), snapshot["counter"])
}

func TestTable_ResolveAndRemove(t *testing.T) {
	table := NewTable()
	h, err := Export(objectSchema(), objectRecord())
	require.NoError(t, err)

	table.Add(h)
	resolved, err := table.Resolve(h.ID())
	require.NoError(t, err)
	assert.Same(t, h, resolved)
	assert.Equal(t, []string{h.ID()}, table.IDs())

	table.Remove(h.ID())
	assert.True(t, h.Released())
	_, err = table.Resolve(h.ID())
	testutil.AssertErrorType(t, err, entities.ErrTypeDisposed)
	assert.Empty(t, table.IDs())
}

func TestTable_ResolveUnknownID(t *testing.T) {
	table := NewTable()
	_, err := table.Resolve("no-such-id")
	testutil.AssertErrorType(t, err, entities.ErrTypeDisposed)
}
