package pdfs

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/nodify/internal/telemetry"
	"github.com/katalvlaran/nodify/internal/workpool"
	"github.com/katalvlaran/nodify/metrics"
	"github.com/katalvlaran/nodify/node"
	"github.com/katalvlaran/nodify/store"
)

// DFS is a parallel depth-first search rooted at a start node.
// A DFS value is immutable and safe to query from several goroutines;
// every query allocates its own frontier and visited set.
type DFS[N node.Node[N]] struct {
	start    N
	opts     Options
	onExpand func(N)
}

// New returns a parallel DFS engine rooted at start. Invalid options are
// reported by the first query.
func New[N node.Node[N]](start N, opts ...Option) *DFS[N] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &DFS[N]{start: start, opts: o}
}

// WithOnExpand returns a copy of d that calls fn each time a node is
// expanded. fn may run on several goroutines at once, but at most once per
// distinct node and query.
func (d *DFS[N]) WithOnExpand(fn func(N)) *DFS[N] {
	cp := *d
	cp.onExpand = fn

	return &cp
}

// Exists reports whether a node reachable from the start satisfies pred.
func (d *DFS[N]) Exists(pred node.Predicate[N]) (bool, error) {
	_, found, err := d.FindAny(pred)

	return found, err
}

// FindAny returns some reachable node satisfying pred.
func (d *DFS[N]) FindAny(pred node.Predicate[N]) (N, bool, error) {
	var zero N
	if d.opts.err != nil {
		return zero, false, d.opts.err
	}
	if pred == nil {
		return zero, false, ErrPredicateNil
	}

	ctx, span := telemetry.Start(d.opts.Ctx, d.opts.TracerProvider, metrics.EnginePDFS, "FindAny",
		attribute.Int("workers", d.opts.Workers),
		attribute.Int("batch_size", d.opts.BatchSize),
	)
	s := &search[N]{
		pred:      pred,
		onExpand:  d.onExpand,
		visited:   store.NewVisitedSet[N](0),
		pool:      workpool.New(d.opts.Workers),
		batchSize: d.opts.BatchSize,
		metrics:   d.opts.Metrics,
		log:       telemetry.Logger(d.opts.Logger),
	}
	err := s.run(ctx, d.start)

	var match N
	found := false
	if m := s.match.Load(); m != nil && err == nil {
		match, found = *m, true
	}
	expanded := int(s.expanded.Load())

	telemetry.Finish(span, found, err,
		attribute.Int("expanded", expanded),
		attribute.Int("rounds", s.rounds),
	)
	d.opts.Metrics.Expanded(metrics.EnginePDFS, expanded)
	d.opts.Metrics.Searched(metrics.EnginePDFS, found, err)
	telemetry.Logger(d.opts.Logger).WithFields(logrus.Fields{
		"engine":   metrics.EnginePDFS,
		"workers":  s.pool.Size(),
		"rounds":   s.rounds,
		"expanded": expanded,
		"found":    found,
	}).Debug("pdfs: search finished")

	if !found {
		return zero, false, err
	}

	return match, true, nil
}

// search holds the state shared by all batches of one query.
type search[N node.Node[N]] struct {
	pred      node.Predicate[N]
	onExpand  func(N)
	visited   *store.VisitedSet[N]
	pool      *workpool.Pool
	batchSize int
	metrics   *metrics.Collector
	log       logrus.FieldLogger

	stop     atomic.Bool
	match    atomic.Pointer[N]
	expanded atomic.Int64
	rounds   int // touched by the calling goroutine only
}

// run drives rounds until a match, an empty frontier, or ctx is done.
func (s *search[N]) run(ctx context.Context, start N) error {
	frontier := []N{start}
	workers := s.pool.Size()

	var err error
	for len(frontier) > 0 && !s.stop.Load() {
		if err = ctx.Err(); err != nil {
			return err
		}

		// Small frontier: not worth a round trip through the pool.
		if len(frontier) < workers {
			if frontier, err = s.batch(ctx, frontier); err != nil {
				return err
			}
			continue
		}

		// Split the top T nodes into single-node batches.
		cut := len(frontier) - workers
		seeds := slices.Clone(frontier[cut:])
		frontier = frontier[:cut]

		residuals := make([][]N, workers)
		err = s.pool.Run(ctx, workers, func(ctx context.Context, i int) error {
			rest, err := s.batch(ctx, []N{seeds[i]})
			residuals[i] = rest

			return err
		})
		s.rounds++
		s.metrics.Round(metrics.EnginePDFS)
		if err != nil {
			return err
		}
		for _, rest := range residuals {
			frontier = append(frontier, rest...)
		}
		s.log.WithFields(logrus.Fields{
			"round":    s.rounds,
			"frontier": len(frontier),
		}).Trace("pdfs: round done")
	}

	return nil
}

// batch runs up to batchSize steps on frontier and returns what is left.
func (s *search[N]) batch(ctx context.Context, frontier []N) ([]N, error) {
	var n N
	for steps := 0; steps < s.batchSize && len(frontier) > 0; steps++ {
		if s.stop.Load() {
			return frontier, nil
		}
		if err := ctx.Err(); err != nil {
			return frontier, err
		}

		n = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if s.pred(n) {
			s.found(n)
			return frontier, nil
		}

		// Only the goroutine whose insert succeeds expands n.
		if !s.visited.Insert(n) {
			continue
		}
		s.expanded.Add(1)
		if s.onExpand != nil {
			s.onExpand(n)
		}
		for next := range n.Outgoing() {
			if !s.visited.Contains(next) {
				frontier = append(frontier, next)
			}
		}
	}

	return frontier, nil
}

// found records the first match and raises the stop flag.
func (s *search[N]) found(n N) {
	s.match.CompareAndSwap(nil, &n)
	s.stop.Store(true)
}
