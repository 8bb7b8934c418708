// Package workflow resolves approval workflow actions against a fixed
// transition table.
//
// The resolver is a stateless classifier from action token to target
// state: it does not consult the record's current state, so callers that
// need guarded transitions must check the current state themselves before
// applying the result. Success is determined solely by table membership;
// an unrecognized action yields an explicit no-transition result, never a
// silent default.
package workflow

import "github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"

// Workflow states.
const (
	// StateNone is the initial state before any action was applied.
	StateNone = ""

	// StateApproved is reached through the approve action.
	StateApproved = "approved"

	// StateRejected is reached through the reject action.
	StateRejected = "rejected"

	// StateUnderReview is reached through the review action.
	StateUnderReview = "under_review"
)

// Recognized actions.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionReview  = "review"
)

// transitions is the fixed action table. It is total over exactly the
// recognized action set.
var transitions = map[string]string{
	ActionApprove: StateApproved,
	ActionReject:  StateRejected,
	ActionReview:  StateUnderReview,
}

// ResolveAction looks up an action in the transition table. A hit returns
// the target state with Success true; a miss returns Success false and an
// empty state.
func ResolveAction(action string) entities.WorkflowTransition {
	state, ok := transitions[action]
	if !ok {
		return entities.WorkflowTransition{Action: action}
	}
	return entities.WorkflowTransition{
		Action:   action,
		NewState: state,
		Success:  true,
	}
}

// Actions returns the recognized action tokens in table order.
func Actions() []string {
	return []string{ActionApprove, ActionReject, ActionReview}
}
