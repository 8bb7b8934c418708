package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

func TestComputedFields_Catalog(t *testing.T) {
	specs := ComputedFields()
	require.Len(t, specs, 2)

	display, ok := specs["display_name"]
	require.True(t, ok)
	assert.Equal(t, []string{"name"}, display.Depends)

	address, ok := specs["full_address"]
	require.True(t, ok)
	assert.Equal(t, []string{"street", "city"}, address.Depends)
}

func TestComputedFields_Compute(t *testing.T) {
	specs := ComputedFields()

	name, err := specs["display_name"].Compute(map[string]any{"name": "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", name)

	addr, err := specs["full_address"].Compute(map[string]any{
		"street": "1 Main St",
		"city":   "Springfield",
	})
	require.NoError(t, err)
	assert.Equal(t, "1 Main St, Springfield", addr)
}

func TestEvaluator_Evaluate(t *testing.T) {
	e := NewEvaluator(nil)

	got, err := e.Evaluate("display_name", map[string]any{"name": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", got)

	got, err = e.Evaluate("display_name", map[string]any{"name": "Globex"})
	require.NoError(t, err)
	assert.Equal(t, "Globex", got)
}

func TestEvaluator_SkipsWhileDepsUnchanged(t *testing.T) {
	calls := 0
	specs := map[string]entities.ComputedFieldSpec{
		"display_name": {
			Name:    "display_name",
			Depends: []string{"name"},
			Compute: func(record map[string]any) (any, error) {
				calls++
				name, _ := record["name"].(string)
				return name, nil
			},
		},
	}
	e := NewEvaluator(specs)

	_, err := e.Evaluate("display_name", map[string]any{"name": "Acme", "city": "A"})
	require.NoError(t, err)

	// A change outside Depends must not trigger recomputation.
	_, err = e.Evaluate("display_name", map[string]any{"name": "Acme", "city": "B"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// A dependency change must.
	got, err := e.Evaluate("display_name", map[string]any{"name": "Globex"})
	require.NoError(t, err)
	assert.Equal(t, "Globex", got)
	assert.Equal(t, 2, calls)
}

func TestEvaluator_UnknownField(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Evaluate("credit_score", map[string]any{})
	require.Error(t, err)

	detail := entities.ToErrorDetail(err)
	assert.Equal(t, entities.ErrTypeValidation, detail.Type)
}

func TestEvaluator_Names(t *testing.T) {
	e := NewEvaluator(nil)
	assert.ElementsMatch(t, []string{"display_name", "full_address"}, e.Names())
}
