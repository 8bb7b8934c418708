package sqlite

import (
	"fmt"
	"strings"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// WhereSQL translates an ordered clause sequence into a parameterized SQL
// WHERE expression. Clauses join with AND in sequence order.
//
// Operator translation:
//
//	=     -> field = ?
//	ilike -> LOWER(field) LIKE LOWER(?), wrapping the value in %...%
//	         when the caller supplied no wildcard
//	in    -> field IN (?, ...)
func WhereSQL(clauses []entities.FilterClause) (string, []any, error) {
	if len(clauses) == 0 {
		return "", nil, nil
	}

	parts := make([]string, 0, len(clauses))
	var args []any
	for _, clause := range clauses {
		switch clause.Operator {
		case entities.OpEquals:
			parts = append(parts, fmt.Sprintf("%s = ?", clause.Field))
			args = append(args, toColumn(clause.Value))
		case entities.OpILike:
			pattern, ok := clause.Value.(string)
			if !ok {
				return "", nil, entities.NewErrorDetail(entities.ErrTypeValidation,
					fmt.Sprintf("ilike on %s requires a string value", clause.Field))
			}
			if !strings.Contains(pattern, "%") {
				pattern = "%" + pattern + "%"
			}
			parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", clause.Field))
			args = append(args, pattern)
		case entities.OpIn:
			items, ok := clause.Value.([]any)
			if !ok || len(items) == 0 {
				return "", nil, entities.NewErrorDetail(entities.ErrTypeValidation,
					fmt.Sprintf("in on %s requires a non-empty list", clause.Field))
			}
			marks := make([]string, len(items))
			for i, item := range items {
				marks[i] = "?"
				args = append(args, toColumn(item))
			}
			parts = append(parts, fmt.Sprintf("%s IN (%s)", clause.Field, strings.Join(marks, ", ")))
		default:
			return "", nil, entities.NewErrorDetail(entities.ErrTypeValidation,
				fmt.Sprintf("unsupported operator %q", clause.Operator))
		}
	}
	return strings.Join(parts, " AND "), args, nil
}
