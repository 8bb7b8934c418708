package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordbridge-dev/recordbridge-sdk/go/bridge"
	"github.com/recordbridge-dev/recordbridge-sdk/go/dispatch"
)

func TestNewExecutor_DefaultRegistry(t *testing.T) {
	ctx := context.Background()
	e, err := NewExecutor(ctx)
	require.NoError(t, err)
	defer e.Close(ctx)

	assert.NotNil(t, e.registry)
}

func TestNewExecutor_WithHostFunctions(t *testing.T) {
	ctx := context.Background()
	table := bridge.NewTable()
	registry, err := dispatch.NewRegistry(
		dispatch.WithBundle(dispatch.AllBundles(table, nil)),
	)
	require.NoError(t, err)

	e, err := NewExecutor(ctx, WithHostFunctions(registry))
	require.NoError(t, err)
	defer e.Close(ctx)

	assert.True(t, e.registry.Has("record_read"))
	assert.True(t, e.registry.Has("workflow_action"))
}

func TestLoadExtension_InvalidModule(t *testing.T) {
	ctx := context.Background()
	e, err := NewExecutor(ctx)
	require.NoError(t, err)
	defer e.Close(ctx)

	_, err = e.LoadExtension(ctx, []byte("not wasm"))
	require.Error(t, err)
}
