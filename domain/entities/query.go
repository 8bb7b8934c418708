package entities

// Operator is a comparison operator in a domain filter clause.
type Operator string

const (
	// OpEquals matches an exact value.
	OpEquals Operator = "="

	// OpILike matches a case-insensitive substring.
	OpILike Operator = "ilike"

	// OpIn matches any value in a list.
	OpIn Operator = "in"
)

// FilterClause is one ordered (field, operator, value) triple of a domain
// filter. Clause order matters: the sequence reads as an implicit AND,
// left to right, and must be deterministic for a given criteria set.
type FilterClause struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

// ComputedFieldSpec declares a derived field as a (dependencies, compute)
// pair. Compute must be a pure function of the fields named in Depends;
// evaluators are entitled to skip recomputation when none of the
// dependencies changed.
type ComputedFieldSpec struct {
	Name    string
	Depends []string
	Compute func(record map[string]any) (any, error)
}

// WorkflowTransition is the result of resolving a workflow action.
// Success is determined solely by membership in the transition table;
// a miss yields an explicit no-transition result, never a silent default.
type WorkflowTransition struct {
	Action   string `json:"action"`
	NewState string `json:"new_state,omitempty"`
	Success  bool   `json:"success"`
}
