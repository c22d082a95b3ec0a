package delta

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/nodify/internal/telemetry"
	"github.com/katalvlaran/nodify/internal/workpool"
	"github.com/katalvlaran/nodify/metrics"
	"github.com/katalvlaran/nodify/node"
	"github.com/katalvlaran/nodify/store"
)

// DeltaStepping is a Delta-Stepping engine rooted at a start node.
// Values are immutable and safe for concurrent queries.
type DeltaStepping[N node.Weighted[N, W], W node.Weight] struct {
	start N
	delta W
	opts  Options
}

// New returns an engine rooted at start with delta = 0; set the bucket
// width with WithDelta before querying. The weight type comes first so it
// can be given alone:
//
//	e := delta.New[uint32](start).WithDelta(8)
func New[W node.Weight, N node.Weighted[N, W]](start N, opts ...Option) *DeltaStepping[N, W] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &DeltaStepping[N, W]{start: start, opts: o}
}

// WithDelta returns a copy of e using bucket width d.
func (e *DeltaStepping[N, W]) WithDelta(d W) *DeltaStepping[N, W] {
	cp := *e
	cp.delta = d

	return &cp
}

// Delta returns the bucket width.
func (e *DeltaStepping[N, W]) Delta() W { return e.delta }

// FindFirst returns the reachable node matching pred with the smallest
// distance from the start.
func (e *DeltaStepping[N, W]) FindFirst(pred node.Predicate[N]) (N, bool, error) {
	n, _, found, err := e.Nearest(pred)

	return n, found, err
}

// FindAny is FindFirst.
func (e *DeltaStepping[N, W]) FindAny(pred node.Predicate[N]) (N, bool, error) {
	return e.FindFirst(pred)
}

// Contains reports whether any reachable node matches pred.
func (e *DeltaStepping[N, W]) Contains(pred node.Predicate[N]) (bool, error) {
	_, _, found, err := e.Nearest(pred)

	return found, err
}

// Nearest is FindFirst that also returns the distance of the match.
func (e *DeltaStepping[N, W]) Nearest(pred node.Predicate[N]) (N, W, bool, error) {
	var (
		zeroN N
		zeroW W
	)
	if err := e.check(); err != nil {
		return zeroN, zeroW, false, err
	}
	if pred == nil {
		return zeroN, zeroW, false, ErrPredicateNil
	}

	ctx, span := telemetry.Start(e.opts.Ctx, e.opts.TracerProvider, metrics.EngineDelta, "Nearest",
		attribute.Int64("delta", int64(e.delta)),
		attribute.Int("workers", e.opts.Workers),
	)
	r := e.runner()
	err := r.settle(ctx)

	var c candidate[N, W]
	if err == nil {
		c, err = r.nearest(ctx, pred)
	}
	e.finish(span, r, c.found, err)
	if err != nil || !c.found {
		return zeroN, zeroW, false, err
	}

	return c.n, c.d, true, nil
}

// Distances settles the reachable subgraph and returns every shortest
// distance from the start.
func (e *DeltaStepping[N, W]) Distances() (map[N]W, error) {
	if err := e.check(); err != nil {
		return nil, err
	}

	ctx, span := telemetry.Start(e.opts.Ctx, e.opts.TracerProvider, metrics.EngineDelta, "Distances",
		attribute.Int64("delta", int64(e.delta)),
		attribute.Int("workers", e.opts.Workers),
	)
	r := e.runner()
	err := r.settle(ctx)
	e.finish(span, r, err == nil, err)
	if err != nil {
		return nil, err
	}

	return r.dist.Snapshot(), nil
}

func (e *DeltaStepping[N, W]) check() error {
	if e.opts.err != nil {
		return e.opts.err
	}
	if e.delta == 0 {
		return ErrZeroDelta
	}

	return nil
}

func (e *DeltaStepping[N, W]) runner() *runner[N, W] {
	return &runner[N, W]{
		start:   e.start,
		delta:   e.delta,
		pool:    workpool.New(e.opts.Workers),
		dist:    store.NewDistanceTable[N, W](0),
		buckets: store.NewBucketMap[N, W](),
		metrics: e.opts.Metrics,
		log:     telemetry.Logger(e.opts.Logger),
	}
}

// finish closes the span and reports counters and the debug record.
func (e *DeltaStepping[N, W]) finish(span trace.Span, r *runner[N, W], found bool, err error) {
	expanded := int(r.expanded.Load())
	telemetry.Finish(span, found, err,
		attribute.Int("expanded", expanded),
		attribute.Int("rounds", r.rounds),
		attribute.Int("settled", r.dist.Len()),
	)
	e.opts.Metrics.Expanded(metrics.EngineDelta, expanded)
	e.opts.Metrics.Searched(metrics.EngineDelta, found, err)
	telemetry.Logger(e.opts.Logger).WithFields(logrus.Fields{
		"engine":   metrics.EngineDelta,
		"delta":    e.delta,
		"workers":  r.pool.Size(),
		"rounds":   r.rounds,
		"expanded": expanded,
		"settled":  r.dist.Len(),
		"found":    found,
	}).Debug("delta: search finished")
}
