// Package records provides application-level operations over bridged
// record handles.
package records

import (
	"context"

	"github.com/recordbridge-dev/recordbridge-sdk/go/bridge"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/ports"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/query"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/workflow"
)

// BatchResult reports the outcome of a batch operation.
type BatchResult struct {
	Processed int    `json:"processed"`
	Success   bool   `json:"success"`
	Operation string `json:"operation"`
}

// ProcessBatch resolves the operation as a workflow action and applies the
// resulting state to the "state" property of every handle that declares
// one. Handles without a mutable state property count as processed but do
// not change. An unrecognized operation fails the whole batch without
// touching any handle.
func ProcessBatch(handles []*bridge.Handle, operation string) (BatchResult, error) {
	result := BatchResult{Operation: operation}

	transition := workflow.ResolveAction(operation)
	if !transition.Success {
		return result, entities.NewErrorDetail(entities.ErrTypeValidation,
			"unknown batch operation: "+operation)
	}

	for _, h := range handles {
		desc, ok := h.Schema().Descriptor("state")
		if ok && desc.Mutable {
			if err := h.Write("state", transition.NewState); err != nil {
				return result, err
			}
		}
		result.Processed++
	}
	result.Success = true
	return result, nil
}

// SelectBatch builds a domain filter from the criteria and returns the
// matching records from the store.
func SelectBatch(ctx context.Context, store ports.RecordStore, criteria map[string]any, opts ...query.FilterOption) ([]map[string]any, error) {
	clauses, err := query.BuildDomainFilter(criteria, opts...)
	if err != nil {
		return nil, err
	}
	return store.Select(ctx, clauses)
}
