package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

type requestAwareHandler struct {
	next slog.Handler
}

// NewLogger builds the process logger: a text handler on w at the given level,
// enriched with request and trace fields.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(WrapSlogHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// WrapSlogHandler adds request id, route and trace fields to structured logs.
func WrapSlogHandler(next slog.Handler) slog.Handler {
	if next == nil {
		next = slog.NewTextHandler(io.Discard, nil)
	}
	return &requestAwareHandler{next: next}
}

func (h *requestAwareHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *requestAwareHandler) Handle(ctx context.Context, record slog.Record) error {
	if requestID, ok := RequestIDFromContext(ctx); ok {
		record.AddAttrs(slog.String("request_id", requestID))
	}
	if route, ok := RouteFromContext(ctx); ok {
		record.AddAttrs(slog.String("route", route))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return h.next.Handle(ctx, record)
}

func (h *requestAwareHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &requestAwareHandler{next: h.next.WithAttrs(attrs)}
}

func (h *requestAwareHandler) WithGroup(name string) slog.Handler {
	return &requestAwareHandler{next: h.next.WithGroup(name)}
}
