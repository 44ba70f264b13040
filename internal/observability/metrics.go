package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	OutcomeMerged = "merged"
	OutcomeFailed = "failed"
)

const (
	FanOutChildrenMetric = "gateway.fanout.children"
	FanOutDurationMetric = "gateway.fanout.duration"
)

// FanOutDurationBuckets are the histogram bounds, in seconds, for one merge.
var FanOutDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// FanOutMetrics counts fan-out children by plan and outcome.
type FanOutMetrics struct {
	children metric.Int64Counter
	duration metric.Float64Histogram
}

// NewFanOutMetrics builds the fan-out instruments on provider, or on the
// global provider when provider is nil.
func NewFanOutMetrics(provider metric.MeterProvider) FanOutMetrics {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter("github.com/fr0stylo/vtexgate/internal/aggregate")
	children, _ := meter.Int64Counter(FanOutChildrenMetric,
		metric.WithDescription("Detail fetches issued by fan-out merges."))
	duration, _ := meter.Float64Histogram(FanOutDurationMetric,
		metric.WithDescription("Wall time of one fan-out merge."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(FanOutDurationBuckets...))
	return FanOutMetrics{children: children, duration: duration}
}

// RecordChild counts one settled child fetch.
func (m FanOutMetrics) RecordChild(ctx context.Context, plan, outcome string) {
	if m.children == nil {
		return
	}
	m.children.Add(ctx, 1, metric.WithAttributes(
		attribute.String("plan", plan),
		attribute.String("outcome", outcome),
	))
}

func (m FanOutMetrics) RecordDuration(ctx context.Context, plan string, seconds float64) {
	if m.duration == nil {
		return
	}
	m.duration.Record(ctx, seconds, metric.WithAttributes(attribute.String("plan", plan)))
}
