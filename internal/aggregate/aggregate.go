// Package aggregate fans out one detail fetch per child of an upstream
// resource and merges the results back onto the children.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/fr0stylo/vtexgate/internal/observability"
)

var (
	// ErrMissingReference marks a child that carries no reference id.
	ErrMissingReference = errors.New("child has no reference id")
	// ErrNotObject marks a child that is not a JSON object.
	ErrNotObject = errors.New("child is not an object")
)

// Plan describes one fan-out: where the reference lives, how the detail is
// fetched and under which key it is attached.
type Plan struct {
	Name  string
	Key   string
	Ref   func(child map[string]any) (string, bool)
	Fetch func(ctx context.Context, ref string) (any, error)
	// OnFailure decorates the entry of a failed child. The default sets Key to nil.
	OnFailure func(entry map[string]any, err error)
}

// Aggregator runs plans. The zero value is not usable; call New.
type Aggregator struct {
	limit         int
	log           *slog.Logger
	meterProvider metric.MeterProvider
	metrics       observability.FanOutMetrics
}

type Option func(*Aggregator)

// WithLimit caps concurrent fetches per merge. Zero or less means unlimited.
func WithLimit(limit int) Option {
	return func(a *Aggregator) {
		a.limit = limit
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(a *Aggregator) {
		if log != nil {
			a.log = log
		}
	}
}

// WithMeterProvider records fan-out metrics on provider instead of the
// global one.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(a *Aggregator) {
		a.meterProvider = provider
	}
}

func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.metrics = observability.NewFanOutMetrics(a.meterProvider)
	return a
}

// Merge fetches the detail of every child concurrently and returns one entry
// per child, in input order. A failing child never fails the merge: its entry
// is decorated by plan.OnFailure instead. Entries are shallow copies, the
// input children are left untouched.
func (a *Aggregator) Merge(ctx context.Context, children []any, plan Plan) []any {
	out := make([]any, len(children))
	if len(children) == 0 {
		return out
	}

	ctx, span := observability.StartFanOutSpan(ctx, plan.Name, len(children))
	defer span.End()
	started := time.Now()

	failures := make([]error, len(children))
	var g errgroup.Group
	if a.limit > 0 {
		g.SetLimit(a.limit)
	}
	for i, child := range children {
		g.Go(func() error {
			entry, err := a.mergeOne(ctx, child, plan)
			if err != nil {
				failures[i] = err
				failOn(plan, entry, err)
			}
			out[i] = entry
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, err := range failures {
		outcome := observability.OutcomeMerged
		if err != nil {
			failed++
			outcome = observability.OutcomeFailed
			a.log.WarnContext(ctx, "fan-out child failed",
				"plan", plan.Name,
				"index", i,
				"error", err,
			)
		}
		a.metrics.RecordChild(ctx, plan.Name, outcome)
	}
	a.metrics.RecordDuration(ctx, plan.Name, time.Since(started).Seconds())
	span.SetCounts(len(children), failed)
	if failed == len(children) {
		span.RecordError(fmt.Errorf("all %d %s fetches failed", failed, plan.Name))
	}
	return out
}

func (a *Aggregator) mergeOne(ctx context.Context, child any, plan Plan) (map[string]any, error) {
	obj, ok := child.(map[string]any)
	if !ok {
		return map[string]any{}, ErrNotObject
	}
	entry := make(map[string]any, len(obj)+1)
	for k, v := range obj {
		entry[k] = v
	}

	ref, ok := plan.Ref(obj)
	if !ok {
		return entry, ErrMissingReference
	}
	detail, err := plan.Fetch(ctx, ref)
	if err != nil {
		return entry, fmt.Errorf("fetch %s %s: %w", plan.Name, ref, err)
	}
	entry[plan.Key] = detail
	return entry, nil
}

func failOn(plan Plan, entry map[string]any, err error) {
	if plan.OnFailure != nil {
		plan.OnFailure(entry, err)
		return
	}
	entry[plan.Key] = nil
}
