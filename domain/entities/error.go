package entities

import "fmt"

// Error types used across the bridge boundary. Every error crossing from
// host to script carries one of these so the script side can branch on it
// without parsing messages.
const (
	// ErrTypeUnknownProperty indicates a property that is not declared on
	// the handle's schema.
	ErrTypeUnknownProperty = "unknown_property"

	// ErrTypeReadOnly indicates a write to a property whose descriptor is
	// not mutable.
	ErrTypeReadOnly = "read_only_property"

	// ErrTypeCoercion indicates a value that cannot be converted between
	// the host and script representations of its declared type.
	ErrTypeCoercion = "type_coercion"

	// ErrTypeDisposed indicates a handle used after the host released it.
	ErrTypeDisposed = "disposed_handle"

	// ErrTypeValidation indicates rejected input (strict criteria mode,
	// malformed invocation config).
	ErrTypeValidation = "validation"

	// ErrTypeInternal is the fallback for unexpected failures.
	ErrTypeInternal = "internal"
)

// ErrorDetail provides structured error information.
// Used across SDK operations and as the wire protocol error format.
type ErrorDetail struct {
	// Wrapped contains a wrapped error for error chains.
	Wrapped *ErrorDetail `json:"wrapped,omitempty"`

	// Details contains additional error context.
	Details map[string]any `json:"details,omitempty"`

	// Message is a human-readable error description.
	Message string `json:"message"`

	// Type categorizes the error. See the ErrType constants.
	Type string `json:"type"`

	// Code is a machine-readable error code.
	Code string `json:"code,omitempty"`
}

// Error implements the error interface.
func (e *ErrorDetail) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Type != "" && e.Type != ErrTypeInternal {
		msg = fmt.Sprintf("%s: %s", e.Type, msg)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped.Error())
	}
	return msg
}

// Is reports whether target is an *ErrorDetail of the same Type.
// This makes errors.Is usable with the sentinel constructors below.
func (e *ErrorDetail) Is(target error) bool {
	t, ok := target.(*ErrorDetail)
	if !ok || e == nil {
		return false
	}
	return e.Type == t.Type
}

// NewErrorDetail creates an ErrorDetail with the given type and message.
func NewErrorDetail(errorType, message string) *ErrorDetail {
	return &ErrorDetail{
		Type:    errorType,
		Message: message,
	}
}

// WithDetails attaches additional context to the error.
func (e *ErrorDetail) WithDetails(details map[string]any) *ErrorDetail {
	e.Details = details
	return e
}

// WithCode attaches a machine-readable code to the error.
func (e *ErrorDetail) WithCode(code string) *ErrorDetail {
	e.Code = code
	return e
}

// ErrUnknownProperty creates an error for a property not declared on a
// handle's schema.
func ErrUnknownProperty(object, property string) *ErrorDetail {
	return NewErrorDetail(ErrTypeUnknownProperty,
		fmt.Sprintf("property %q is not declared on %s", property, object)).
		WithDetails(map[string]any{"object": object, "property": property})
}

// ErrReadOnlyProperty creates an error for a write to an immutable property.
func ErrReadOnlyProperty(object, property string) *ErrorDetail {
	return NewErrorDetail(ErrTypeReadOnly,
		fmt.Sprintf("property %q on %s is read-only", property, object)).
		WithDetails(map[string]any{"object": object, "property": property})
}

// ErrTypeCoercionFailed creates an error naming the offending type pair.
func ErrTypeCoercionFailed(from, to string) *ErrorDetail {
	return NewErrorDetail(ErrTypeCoercion,
		fmt.Sprintf("cannot coerce %s to %s", from, to)).
		WithDetails(map[string]any{"from": from, "to": to})
}

// ErrDisposedHandle creates an error for a handle used after release.
func ErrDisposedHandle(id string) *ErrorDetail {
	return NewErrorDetail(ErrTypeDisposed,
		fmt.Sprintf("handle %s was released by the host", id)).
		WithDetails(map[string]any{"handle": id})
}

// ToErrorDetail converts a Go error to a structured ErrorDetail.
// Structured errors pass through unchanged; everything else becomes an
// internal error.
func ToErrorDetail(err error) *ErrorDetail {
	if err == nil {
		return nil
	}
	if detail, ok := err.(*ErrorDetail); ok {
		return detail
	}
	return NewErrorDetail(ErrTypeInternal, err.Error())
}
