package entities

import "time"

// Wire structures for the WASM transport. Guests exchange these as JSON;
// they must remain stable and backward compatible as they define the ABI
// contract between host and guest. Property values cross the wire in
// script representation: strings, int64, bool, and RFC 3339 strings for
// timestamps.

// ContextWire is the JSON wire format for context.Context propagation.
type ContextWire struct {
	Deadline  *time.Time `json:"deadline,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
	TimeoutMs int64      `json:"timeout_ms,omitempty"`
	Canceled  bool       `json:"canceled,omitempty"`
}

// ReadRequest asks the host to read one property of a bridged handle.
type ReadRequest struct {
	Handle   string      `json:"handle"`
	Property string      `json:"property"`
	Context  ContextWire `json:"context"`
}

// ReadResponse carries the property value in script representation.
type ReadResponse struct {
	Error *ErrorDetail `json:"error,omitempty"`
	Value any          `json:"value,omitempty"`
}

// WriteRequest asks the host to write one property of a bridged handle.
type WriteRequest struct {
	Handle   string      `json:"handle"`
	Property string      `json:"property"`
	Value    any         `json:"value"`
	Context  ContextWire `json:"context"`
}

// WriteResponse acknowledges a property write.
type WriteResponse struct {
	Error *ErrorDetail `json:"error,omitempty"`
}

// SnapshotRequest asks the host for all declared properties of a handle.
type SnapshotRequest struct {
	Handle  string      `json:"handle"`
	Context ContextWire `json:"context"`
}

// SnapshotResponse carries every declared property in script representation.
type SnapshotResponse struct {
	Error      *ErrorDetail   `json:"error,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// DomainFilterRequest asks the host to build a domain filter from criteria.
type DomainFilterRequest struct {
	Criteria map[string]any `json:"criteria"`
	Strict   bool           `json:"strict,omitempty"`
	Context  ContextWire    `json:"context"`
}

// DomainFilterResponse carries the ordered clause sequence.
type DomainFilterResponse struct {
	Error   *ErrorDetail   `json:"error,omitempty"`
	Clauses []FilterClause `json:"clauses"`
}

// WorkflowRequest asks the host to resolve an approval workflow action.
type WorkflowRequest struct {
	Action  string      `json:"action"`
	Context ContextWire `json:"context"`
}

// WorkflowResponse carries the transition result.
type WorkflowResponse struct {
	Error      *ErrorDetail       `json:"error,omitempty"`
	Transition WorkflowTransition `json:"transition"`
}

// ComputedFieldWire describes one computed field without its compute
// function, which never crosses the wire.
type ComputedFieldWire struct {
	Name    string   `json:"name"`
	Depends []string `json:"depends"`
}

// ComputedFieldsResponse lists the host's computed field catalog.
type ComputedFieldsResponse struct {
	Error  *ErrorDetail        `json:"error,omitempty"`
	Fields []ComputedFieldWire `json:"fields"`
}

// LogRequest carries a guest log record to the host logger.
type LogRequest struct {
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Attrs   map[string]any `json:"attrs,omitempty"`
}
