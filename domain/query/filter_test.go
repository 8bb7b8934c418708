package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

func TestBuildDomainFilter_Empty(t *testing.T) {
	clauses, err := BuildDomainFilter(nil)
	require.NoError(t, err)
	assert.Empty(t, clauses)

	clauses, err = BuildDomainFilter(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, clauses)
}

func TestBuildDomainFilter_SingleKeys(t *testing.T) {
	tests := []struct {
		name     string
		criteria map[string]any
		want     entities.FilterClause
	}{
		{
			name:     "is_company",
			criteria: map[string]any{"is_company": true},
			want:     entities.FilterClause{Field: "is_company", Operator: entities.OpEquals, Value: true},
		},
		{
			name:     "country maps to country_id",
			criteria: map[string]any{"country": "US"},
			want:     entities.FilterClause{Field: "country_id", Operator: entities.OpEquals, Value: "US"},
		},
		{
			name:     "name uses ilike",
			criteria: map[string]any{"name": "Acme"},
			want:     entities.FilterClause{Field: "name", Operator: entities.OpILike, Value: "Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses, err := BuildDomainFilter(tt.criteria)
			require.NoError(t, err)
			require.Len(t, clauses, 1)
			assert.Equal(t, tt.want, clauses[0])
		})
	}
}

func TestBuildDomainFilter_OrderFollowsTable(t *testing.T) {
	// Output order follows the criteria table, not map iteration order.
	clauses, err := BuildDomainFilter(map[string]any{
		"name":       "Acme",
		"country":    "US",
		"is_company": false,
	})
	require.NoError(t, err)
	require.Len(t, clauses, 3)
	assert.Equal(t, "is_company", clauses[0].Field)
	assert.Equal(t, "country_id", clauses[1].Field)
	assert.Equal(t, "name", clauses[2].Field)
}

func TestBuildDomainFilter_UnknownKeysIgnored(t *testing.T) {
	clauses, err := BuildDomainFilter(map[string]any{
		"name":  "Acme",
		"email": "x@example.com",
	})
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.Equal(t, "name", clauses[0].Field)
}

func TestBuildDomainFilter_StrictKeys(t *testing.T) {
	_, err := BuildDomainFilter(map[string]any{
		"name":  "Acme",
		"email": "x@example.com",
		"vat":   "123",
	}, WithStrictKeys())
	require.Error(t, err)

	detail := entities.ToErrorDetail(err)
	assert.Equal(t, entities.ErrTypeValidation, detail.Type)
	assert.Equal(t, "UNKNOWN_CRITERIA", detail.Code)
	// Unknown keys are reported sorted.
	assert.Contains(t, detail.Message, "email, vat")

	clauses, err := BuildDomainFilter(map[string]any{"name": "Acme"}, WithStrictKeys())
	require.NoError(t, err)
	assert.Len(t, clauses, 1)
}

func TestRecognizedKeys(t *testing.T) {
	assert.Equal(t, []string{"is_company", "country", "name"}, RecognizedKeys())
}
