// Package log configures structured logging (slog) for the record bridge
// host and prepares attributes for transport across runtime boundaries.
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// HandlerOption configures the handler built by NewLogger.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	writer    io.Writer
	level     slog.Level
	addSource bool
	json      bool
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		writer: os.Stderr,
		level:  slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// WithJSON switches output to the JSON handler.
func WithJSON(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.json = enabled
	}
}

// WithWriter sets the output destination (default: stderr).
func WithWriter(w io.Writer) HandlerOption {
	return func(c *handlerConfig) {
		c.writer = w
	}
}

// NewLogger builds a slog.Logger with the given options.
func NewLogger(opts ...HandlerOption) *slog.Logger {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	hopts := &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	}
	if cfg.json {
		return slog.New(slog.NewJSONHandler(cfg.writer, hopts))
	}
	return slog.New(slog.NewTextHandler(cfg.writer, hopts))
}

// ParseLevel maps a level name to a slog.Level. Unknown names parse as
// info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AttrsToMap flattens slog attributes into a JSON-safe map for the
// log_message wire format. Values that cannot cross as JSON are rendered
// as strings.
func AttrsToMap(attrs []slog.Attr) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for _, attr := range attrs {
		out[attr.Key] = attrValue(attr.Value.Resolve())
	}
	return out
}

func attrValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindGroup:
		group := v.Group()
		nested := make(map[string]any, len(group))
		for _, attr := range group {
			nested[attr.Key] = attrValue(attr.Value.Resolve())
		}
		return nested
	case slog.KindAny:
		av := v.Any()
		if av == nil {
			return nil
		}
		if err, isErr := av.(error); isErr {
			return err.Error()
		}
		if data, marshalErr := json.Marshal(av); marshalErr == nil {
			var decoded any
			if json.Unmarshal(data, &decoded) == nil {
				return decoded
			}
		}
		return fmt.Sprintf("%v", av)
	default:
		return fmt.Sprintf("%v", v.Any())
	}
}
