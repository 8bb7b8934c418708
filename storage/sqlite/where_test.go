package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

func TestWhereSQL_Empty(t *testing.T) {
	where, args, err := WhereSQL(nil)
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestWhereSQL_Clauses(t *testing.T) {
	tests := []struct {
		name      string
		clauses   []entities.FilterClause
		wantWhere string
		wantArgs  []any
	}{
		{
			name: "equals",
			clauses: []entities.FilterClause{
				{Field: "is_company", Operator: entities.OpEquals, Value: true},
			},
			wantWhere: "is_company = ?",
			wantArgs:  []any{int64(1)},
		},
		{
			name: "ilike wraps plain value in wildcards",
			clauses: []entities.FilterClause{
				{Field: "name", Operator: entities.OpILike, Value: "Acme"},
			},
			wantWhere: "LOWER(name) LIKE LOWER(?)",
			wantArgs:  []any{"%Acme%"},
		},
		{
			name: "ilike keeps caller wildcards",
			clauses: []entities.FilterClause{
				{Field: "name", Operator: entities.OpILike, Value: "Acme%"},
			},
			wantWhere: "LOWER(name) LIKE LOWER(?)",
			wantArgs:  []any{"Acme%"},
		},
		{
			name: "in",
			clauses: []entities.FilterClause{
				{Field: "country_id", Operator: entities.OpIn, Value: []any{"US", "DE"}},
			},
			wantWhere: "country_id IN (?, ?)",
			wantArgs:  []any{"US", "DE"},
		},
		{
			name: "clauses join with AND in order",
			clauses: []entities.FilterClause{
				{Field: "is_company", Operator: entities.OpEquals, Value: false},
				{Field: "name", Operator: entities.OpILike, Value: "doe"},
			},
			wantWhere: "is_company = ? AND LOWER(name) LIKE LOWER(?)",
			wantArgs:  []any{int64(0), "%doe%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, err := WhereSQL(tt.clauses)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestWhereSQL_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		clauses []entities.FilterClause
	}{
		{
			name: "ilike needs a string",
			clauses: []entities.FilterClause{
				{Field: "name", Operator: entities.OpILike, Value: 42},
			},
		},
		{
			name: "in needs a non-empty list",
			clauses: []entities.FilterClause{
				{Field: "country_id", Operator: entities.OpIn, Value: []any{}},
			},
		},
		{
			name: "unsupported operator",
			clauses: []entities.FilterClause{
				{Field: "name", Operator: entities.Operator(">"), Value: "A"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := WhereSQL(tt.clauses)
			require.Error(t, err)
			detail := entities.ToErrorDetail(err)
			assert.Equal(t, entities.ErrTypeValidation, detail.Type)
		})
	}
}
