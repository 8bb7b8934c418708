package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultMaxRequestSize bounds request payloads crossing a transport
// boundary. 1MB covers any realistic record snapshot or criteria map.
const DefaultMaxRequestSize uint32 = 1 * 1024 * 1024

// HostFunc is a typed host function: it accepts a context and a request
// and returns a response. Errors are reported inside the response type so
// guests always receive a parseable payload.
type HostFunc[Req any, Resp any] func(context.Context, Req) Resp

// ByteHandler is a host function over raw JSON bytes. This is the common
// shape transports dispatch against.
type ByteHandler func(context.Context, []byte) ([]byte, error)

// NewJSONHandler wraps a typed HostFunc into a ByteHandler, handling the
// JSON decode of the request and encode of the response.
func NewJSONHandler[Req any, Resp any](fn HostFunc[Req, Resp]) ByteHandler {
	return func(ctx context.Context, payload []byte) ([]byte, error) {
		var req Req
		if len(payload) == 0 {
			payload = []byte("{}")
		}
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, fmt.Errorf("failed to unmarshal request: %w", err)
		}

		resp := fn(ctx, req)

		respBytes, err := json.Marshal(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
		return respBytes, nil
	}
}
