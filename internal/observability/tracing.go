package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const fanOutTracerName = "vtexgate/fanout"

type contextKey string

const (
	requestIDKey contextKey = "observability.request_id"
	routeKey     contextKey = "observability.route"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
	SetCounts(total, failed int)
}

type otelSpan struct {
	inner trace.Span
}

// StartFanOutSpan starts an internal span covering one fan-out merge.
func StartFanOutSpan(ctx context.Context, plan string, children int) (context.Context, Span) {
	plan = strings.TrimSpace(plan)
	if plan == "" {
		plan = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("gateway.fanout.plan", plan),
		attribute.Int("gateway.fanout.children", children),
	}
	if route, ok := RouteFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("http.route", route))
	}

	ctx, span := otel.Tracer(fanOutTracerName).Start(ctx, "fanout."+plan,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, otelSpan{inner: span}
}

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
	}
	setSpanRequestAttributes(ctx, requestID, route)
	return ctx
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(requestIDKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(routeKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func setSpanRequestAttributes(ctx context.Context, requestID, route string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	attrs := make([]attribute.KeyValue, 0, 2)
	if requestID != "" {
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	if route != "" {
		attrs = append(attrs, attribute.String("http.route", route))
	}
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}

func (s otelSpan) SetCounts(total, failed int) {
	if s.inner == nil {
		return
	}
	s.inner.SetAttributes(
		attribute.Int("gateway.fanout.children", total),
		attribute.Int("gateway.fanout.failed", failed),
	)
}
