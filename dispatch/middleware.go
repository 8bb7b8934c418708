package dispatch

import (
	"context"
	"log/slog"
)

// Middleware wraps a ByteHandler to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps outermost).
type Middleware func(next ByteHandler) ByteHandler

// PanicRecoveryMiddleware catches panics in handlers and converts them to
// structured ErrorResponse JSON instead of crashing the host.
func PanicRecoveryMiddleware() Middleware {
	return func(next ByteHandler) ByteHandler {
		return func(ctx context.Context, payload []byte) (resp []byte, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp = NewPanicError(r).ToJSON()
					err = nil // guests get JSON, not a Go error
				}
			}()
			return next(ctx, payload)
		}
	}
}

// LoggingMiddleware logs host function invocations through the given
// slog logger. A nil logger uses slog.Default.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ByteHandler) ByteHandler {
		return func(ctx context.Context, payload []byte) ([]byte, error) {
			funcName := "unknown"
			if cc, ok := ctx.(CallContext); ok {
				funcName = cc.FunctionName()
			}
			resp, err := next(ctx, payload)
			if err != nil {
				logger.ErrorContext(ctx, "host function failed", "function", funcName, "error", err)
			} else {
				logger.DebugContext(ctx, "host function completed", "function", funcName)
			}
			return resp, err
		}
	}
}
