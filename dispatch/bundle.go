package dispatch

import (
	"context"
	"log/slog"

	"github.com/recordbridge-dev/recordbridge-sdk/go/bridge"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/query"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/workflow"
)

// Bundle is a pre-configured set of related host functions that can be
// registered together.
type Bundle interface {
	// Handlers returns a map of handler names to ByteHandler functions.
	Handlers() map[string]ByteHandler
}

type staticBundle struct {
	handlers map[string]ByteHandler
}

func (b *staticBundle) Handlers() map[string]ByteHandler {
	return b.handlers
}

// RecordBundle exposes property bridging over a handle table:
// record_read, record_write, record_snapshot. Guests refer to handles by
// the IDs the host registered in the table.
func RecordBundle(table *bridge.Table) Bundle {
	return &staticBundle{
		handlers: map[string]ByteHandler{
			"record_read": NewJSONHandler(func(ctx context.Context, req entities.ReadRequest) entities.ReadResponse {
				h, err := table.Resolve(req.Handle)
				if err != nil {
					return entities.ReadResponse{Error: entities.ToErrorDetail(err)}
				}
				value, err := h.Read(req.Property)
				if err != nil {
					return entities.ReadResponse{Error: entities.ToErrorDetail(err)}
				}
				return entities.ReadResponse{Value: value}
			}),
			"record_write": NewJSONHandler(func(ctx context.Context, req entities.WriteRequest) entities.WriteResponse {
				h, err := table.Resolve(req.Handle)
				if err != nil {
					return entities.WriteResponse{Error: entities.ToErrorDetail(err)}
				}
				if err := h.Write(req.Property, req.Value); err != nil {
					return entities.WriteResponse{Error: entities.ToErrorDetail(err)}
				}
				return entities.WriteResponse{}
			}),
			"record_snapshot": NewJSONHandler(func(ctx context.Context, req entities.SnapshotRequest) entities.SnapshotResponse {
				h, err := table.Resolve(req.Handle)
				if err != nil {
					return entities.SnapshotResponse{Error: entities.ToErrorDetail(err)}
				}
				props, err := h.Snapshot()
				if err != nil {
					return entities.SnapshotResponse{Error: entities.ToErrorDetail(err)}
				}
				return entities.SnapshotResponse{Properties: props}
			}),
		},
	}
}

// EngineBundle exposes the declarative engine: domain_filter,
// computed_fields, workflow_action.
func EngineBundle() Bundle {
	return &staticBundle{
		handlers: map[string]ByteHandler{
			"domain_filter": NewJSONHandler(func(ctx context.Context, req entities.DomainFilterRequest) entities.DomainFilterResponse {
				var opts []query.FilterOption
				if req.Strict {
					opts = append(opts, query.WithStrictKeys())
				}
				clauses, err := query.BuildDomainFilter(req.Criteria, opts...)
				if err != nil {
					return entities.DomainFilterResponse{Error: entities.ToErrorDetail(err)}
				}
				return entities.DomainFilterResponse{Clauses: clauses}
			}),
			"computed_fields": NewJSONHandler(func(ctx context.Context, req struct{}) entities.ComputedFieldsResponse {
				specs := query.ComputedFields()
				fields := make([]entities.ComputedFieldWire, 0, len(specs))
				for _, name := range []string{"display_name", "full_address"} {
					spec, ok := specs[name]
					if !ok {
						continue
					}
					fields = append(fields, entities.ComputedFieldWire{
						Name:    spec.Name,
						Depends: spec.Depends,
					})
				}
				return entities.ComputedFieldsResponse{Fields: fields}
			}),
			"workflow_action": NewJSONHandler(func(ctx context.Context, req entities.WorkflowRequest) entities.WorkflowResponse {
				return entities.WorkflowResponse{Transition: workflow.ResolveAction(req.Action)}
			}),
		},
	}
}

// LogBundle exposes log_message, routing guest log records into the given
// slog logger. A nil logger uses slog.Default.
func LogBundle(logger *slog.Logger) Bundle {
	if logger == nil {
		logger = slog.Default()
	}
	return &staticBundle{
		handlers: map[string]ByteHandler{
			"log_message": NewJSONHandler(func(ctx context.Context, req entities.LogRequest) struct{} {
				attrs := make([]any, 0, len(req.Attrs)*2)
				for k, v := range req.Attrs {
					attrs = append(attrs, k, v)
				}
				switch req.Level {
				case "debug":
					logger.DebugContext(ctx, req.Message, attrs...)
				case "warn":
					logger.WarnContext(ctx, req.Message, attrs...)
				case "error":
					logger.ErrorContext(ctx, req.Message, attrs...)
				default:
					logger.InfoContext(ctx, req.Message, attrs...)
				}
				return struct{}{}
			}),
		},
	}
}

type compositeBundle struct {
	bundles []Bundle
}

func (b *compositeBundle) Handlers() map[string]ByteHandler {
	result := make(map[string]ByteHandler)
	for _, bundle := range b.bundles {
		for name, handler := range bundle.Handlers() {
			result[name] = handler
		}
	}
	return result
}

// AllBundles combines the record, engine, and log bundles.
func AllBundles(table *bridge.Table, logger *slog.Logger) Bundle {
	return &compositeBundle{
		bundles: []Bundle{
			RecordBundle(table),
			EngineBundle(),
			LogBundle(logger),
		},
	}
}

// WithBundle registers all handlers from a bundle.
func WithBundle(bundle Bundle) RegistryOption {
	return func(b *registryBuilder) {
		for name, handler := range bundle.Handlers() {
			if err := b.addHandler(name, handler); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}
