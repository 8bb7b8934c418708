package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
)

func TestResolveAction(t *testing.T) {
	tests := []struct {
		name   string
		action string
		want   entities.WorkflowTransition
	}{
		{
			name:   "approve",
			action: "approve",
			want:   entities.WorkflowTransition{Action: "approve", NewState: StateApproved, Success: true},
		},
		{
			name:   "reject",
			action: "reject",
			want:   entities.WorkflowTransition{Action: "reject", NewState: StateRejected, Success: true},
		},
		{
			name:   "review",
			action: "review",
			want:   entities.WorkflowTransition{Action: "review", NewState: StateUnderReview, Success: true},
		},
		{
			name:   "unrecognized action",
			action: "cancel",
			want:   entities.WorkflowTransition{Action: "cancel"},
		},
		{
			name:   "case sensitive",
			action: "Approve",
			want:   entities.WorkflowTransition{Action: "Approve"},
		},
		{
			name:   "empty action",
			action: "",
			want:   entities.WorkflowTransition{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAction(tt.action))
		})
	}
}

func TestResolveAction_MissLeavesStateEmpty(t *testing.T) {
	got := ResolveAction("escalate")
	assert.False(t, got.Success)
	assert.Equal(t, StateNone, got.NewState)
}

func TestActions(t *testing.T) {
	assert.Equal(t, []string{"approve", "reject", "review"}, Actions())
}
