package entities

import "time"

// ResultStatus represents the outcome status of an SDK operation.
type ResultStatus string

const (
	// ResultStatusSuccess indicates the operation completed successfully.
	ResultStatusSuccess ResultStatus = "success"

	// ResultStatusFailure indicates the operation completed but did not pass
	// (for example a script validation callback returning false).
	ResultStatusFailure ResultStatus = "failure"

	// ResultStatusError indicates an error occurred during the operation.
	ResultStatusError ResultStatus = "error"
)

// Result represents the outcome of a script invocation or batch operation.
// Infrastructure adapters map their runtime's return values into this shape
// so callers never handle Lua or WASM values directly.
type Result struct {
	// Timestamp is when this result was created.
	Timestamp time.Time `json:"timestamp"`

	// Data contains operation-specific result data.
	Data map[string]any `json:"data,omitempty"`

	// Metadata contains execution metadata (timing, runtime).
	Metadata *RunMetadata `json:"metadata,omitempty"`

	// Error contains structured error information if Status is Error.
	Error *ErrorDetail `json:"error,omitempty"`

	// Status indicates whether the operation succeeded, failed, or errored.
	Status ResultStatus `json:"status"`

	// Message provides a human-readable description of the result.
	Message string `json:"message,omitempty"`
}

// ResultSuccess creates a successful Result with the given message and data.
func ResultSuccess(message string, data map[string]any) Result {
	return Result{
		Status:  ResultStatusSuccess,
		Message: message,
		Data:    data,
	}
}

// ResultFailure creates a failure Result with the given message and data.
func ResultFailure(message string, data map[string]any) Result {
	return Result{
		Status:  ResultStatusFailure,
		Message: message,
		Data:    data,
	}
}

// ResultError creates an error Result with the given error details.
func ResultError(err *ErrorDetail) Result {
	return Result{
		Status:  ResultStatusError,
		Message: err.Message,
		Error:   err,
	}
}

// WithMetadata returns a copy of the Result with the given metadata attached.
func (r Result) WithMetadata(m *RunMetadata) Result {
	r.Metadata = m
	return r
}

// IsSuccess returns true if the result indicates success.
func (r Result) IsSuccess() bool {
	return r.Status == ResultStatusSuccess
}

// IsFailure returns true if the result indicates failure.
func (r Result) IsFailure() bool {
	return r.Status == ResultStatusFailure
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == ResultStatusError
}

// RunMetadata contains execution metadata for script invocations.
type RunMetadata struct {
	// StartTime is when the invocation started.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the invocation completed.
	EndTime time.Time `json:"end_time"`

	// Runtime names the script runtime that executed the invocation
	// (for example "lua" or "wasm").
	Runtime string `json:"runtime,omitempty"`

	// Duration is the total execution time.
	Duration time.Duration `json:"duration_ns"`
}

// NewRunMetadata creates a RunMetadata from the given start and end times.
func NewRunMetadata(start, end time.Time) *RunMetadata {
	return &RunMetadata{
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
}

// WithRuntime returns the RunMetadata with the runtime name set.
func (m *RunMetadata) WithRuntime(name string) *RunMetadata {
	m.Runtime = name
	return m
}
