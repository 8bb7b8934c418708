package query

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

// computedCatalog is the fixed computed-field catalog. Specs are
// constructed once at package init; callers receive copies and cannot
// mutate the catalog.
var computedCatalog = []entities.ComputedFieldSpec{
	{
		Name:    "display_name",
		Depends: []string{"name"},
		Compute: func(record map[string]any) (any, error) {
			name, _ := record["name"].(string)
			return name, nil
		},
	},
	{
		Name:    "full_address",
		Depends: []string{"street", "city"},
		Compute: func(record map[string]any) (any, error) {
			street, _ := record["street"].(string)
			city, _ := record["city"].(string)
			return fmt.Sprintf("%s, %s", street, city), nil
		},
	},
}

// ComputedFields returns the computed-field catalog keyed by field name.
// The engine only publishes the field definitions; evaluation belongs to the caller,
// typically through an Evaluator.
func ComputedFields() map[string]entities.ComputedFieldSpec {
	out := make(map[string]entities.ComputedFieldSpec, len(computedCatalog))
	for _, spec := range computedCatalog {
		out[spec.Name] = spec
	}
	return out
}

// Evaluator evaluates computed fields over record snapshots, skipping
// recomputation while a field's declared dependencies are unchanged.
// The skip is legal because Compute must be pure over Depends.
//
// An Evaluator is not safe for concurrent use.
type Evaluator struct {
	specs map[string]entities.ComputedFieldSpec
	// last holds, per field, the dependency values the cached result was
	// computed from.
	last  map[string]map[string]any
	cache map[string]any
}

// NewEvaluator creates an Evaluator over the given specs. With no specs it
// uses the package catalog.
func NewEvaluator(specs map[string]entities.ComputedFieldSpec) *Evaluator {
	if specs == nil {
		specs = ComputedFields()
	}
	return &Evaluator{
		specs: specs,
		last:  make(map[string]map[string]any),
		cache: make(map[string]any),
	}
}

// Evaluate returns the value of a computed field for the given record
// snapshot, recomputing only when a declared dependency changed since the
// previous call.
func (e *Evaluator) Evaluate(field string, record map[string]any) (any, error) {
	spec, ok := e.specs[field]
	if !ok {
		return nil, entities.NewErrorDetail(entities.ErrTypeValidation,
			fmt.Sprintf("unknown computed field %q", field)).
			WithDetails(map[string]any{"known": strings.Join(e.Names(), ", ")})
	}

	deps := make(map[string]any, len(spec.Depends))
	for _, dep := range spec.Depends {
		deps[dep] = record[dep]
	}

	if prev, cached := e.last[field]; cached && reflect.DeepEqual(prev, deps) {
		return e.cache[field], nil
	}

	value, err := spec.Compute(record)
	if err != nil {
		return nil, entities.ToErrorDetail(err)
	}
	e.last[field] = deps
	e.cache[field] = value
	return value, nil
}

// Names returns the evaluator's field names in no particular order.
func (e *Evaluator) Names() []string {
	names := make([]string, 0, len(e.specs))
	for name := range e.specs {
		names = append(names, name)
	}
	return names
}
