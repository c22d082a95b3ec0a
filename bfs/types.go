// Package bfs provides tunable options and error definitions
// for breadth‐first search over implicit graphs.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/nodify/metrics"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrPredicateNil is returned when FindNearest gets a nil predicate.
	ErrPredicateNil = errors.New("bfs: predicate is nil")

	// ErrNotReached is returned by PathTo for a node the traversal never reached.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
//
// Hooks are typed by node, so they are stored untyped here and checked
// against the node type when the traversal starts; a hook for another
// node type is an ErrOptionViolation.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Logger receives a debug record per traversal.
	Logger logrus.FieldLogger

	// TracerProvider supplies the tracer; nil means the global provider.
	TracerProvider trace.TracerProvider

	// Metrics, if non-nil, receives expansion and search counters.
	Metrics *metrics.Collector

	onEnqueue      any // func(N, int)
	onDequeue      any // func(N, int)
	onVisit        any // func(N, int) error
	filterNeighbor any // func(curr, neighbor N) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - logrus standard logger, global tracer, no metrics
//   - no hooks, no filtering.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		MaxDepth: 0,
		Logger:   logrus.StandardLogger(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[N any](fn func(n N, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[N any](fn func(n N, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.onDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[N any](fn func(n N, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N any](fn func(curr, neighbor N) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.filterNeighbor = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets the tracer provider used for spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *BFSOptions) { o.TracerProvider = tp }
}

// WithMetrics installs a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *BFSOptions) { o.Metrics = c }
}

// hooks are the node-typed callbacks resolved from BFSOptions.
type hooks[N any] struct {
	onEnqueue      func(N, int)
	onDequeue      func(N, int)
	onVisit        func(N, int) error
	filterNeighbor func(N, N) bool
}

// resolveHooks type-checks the stored callbacks against N and fills the
// missing ones with no-ops.
func resolveHooks[N any](o *BFSOptions) (hooks[N], error) {
	h := hooks[N]{
		onEnqueue:      func(N, int) {},
		onDequeue:      func(N, int) {},
		onVisit:        func(N, int) error { return nil },
		filterNeighbor: func(N, N) bool { return true },
	}
	var ok bool
	if o.onEnqueue != nil {
		if h.onEnqueue, ok = o.onEnqueue.(func(N, int)); !ok {
			return h, hookMismatch[N]("OnEnqueue", o.onEnqueue)
		}
	}
	if o.onDequeue != nil {
		if h.onDequeue, ok = o.onDequeue.(func(N, int)); !ok {
			return h, hookMismatch[N]("OnDequeue", o.onDequeue)
		}
	}
	if o.onVisit != nil {
		if h.onVisit, ok = o.onVisit.(func(N, int) error); !ok {
			return h, hookMismatch[N]("OnVisit", o.onVisit)
		}
	}
	if o.filterNeighbor != nil {
		if h.filterNeighbor, ok = o.filterNeighbor.(func(N, N) bool); !ok {
			return h, hookMismatch[N]("FilterNeighbor", o.filterNeighbor)
		}
	}

	return h, nil
}

func hookMismatch[N any](name string, fn any) error {
	var zero N

	return fmt.Errorf("%w: %s hook %T does not accept node type %T", ErrOptionViolation, name, fn, zero)
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node to its distance (in edges) from the start.
//   - Parent: map from node to its predecessor in the BFS tree.
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNotReached if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []N{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
