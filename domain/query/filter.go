package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// criteriaSpec binds one recognized criteria key to the field and operator
// of the clause it produces.
type criteriaSpec struct {
	key      string
	field    string
	operator entities.Operator
}

// criteriaTable is the fixed, ordered vocabulary of recognized criteria
// keys. Clause order in the output follows this table, never the criteria
// map's iteration order, so a given criteria set always yields the same
// sequence.
var criteriaTable = []criteriaSpec{
	{key: "is_company", field: "is_company", operator: entities.OpEquals},
	{key: "country", field: "country_id", operator: entities.OpEquals},
	{key: "name", field: "name", operator: entities.OpILike},
}

// FilterOption configures BuildDomainFilter.
type FilterOption func(*filterConfig)

type filterConfig struct {
	strict bool
}

// WithStrictKeys makes unrecognized criteria keys an error instead of
// silently ignoring them. The permissive default matches the documented
// API contract; strict mode is for callers that want criteria typos
// surfaced.
func WithStrictKeys() FilterOption {
	return func(c *filterConfig) {
		c.strict = true
	}
}

// BuildDomainFilter turns a criteria map into an ordered sequence of
// filter clauses, one per recognized key present in the criteria. The
// sequence reads as an implicit AND, left to right.
//
// Recognized keys, in output order:
//
//	is_company -> (is_company, =)
//	country    -> (country_id, =)
//	name       -> (name, ilike)
//
// Unrecognized keys are ignored unless WithStrictKeys is given.
func BuildDomainFilter(criteria map[string]any, opts ...FilterOption) ([]entities.FilterClause, error) {
	var cfg filterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.strict {
		if err := checkKnownKeys(criteria); err != nil {
			return nil, err
		}
	}

	clauses := make([]entities.FilterClause, 0, len(criteriaTable))
	for _, spec := range criteriaTable {
		value, ok := criteria[spec.key]
		if !ok {
			continue
		}
		clauses = append(clauses, entities.FilterClause{
			Field:    spec.field,
			Operator: spec.operator,
			Value:    value,
		})
	}
	return clauses, nil
}

// RecognizedKeys returns the criteria vocabulary in clause order.
func RecognizedKeys() []string {
	keys := make([]string, len(criteriaTable))
	for i, spec := range criteriaTable {
		keys[i] = spec.key
	}
	return keys
}

func checkKnownKeys(criteria map[string]any) error {
	var unknown []string
	for key := range criteria {
		if !recognized(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return entities.NewErrorDetail(entities.ErrTypeValidation,
		fmt.Sprintf("unrecognized criteria keys: %s", strings.Join(unknown, ", "))).
		WithCode("UNKNOWN_CRITERIA")
}

func recognized(key string) bool {
	for _, spec := range criteriaTable {
		if spec.key == key {
			return true
		}
	}
	return false
}
