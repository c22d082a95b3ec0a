// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on implicit weighted graphs.
//
// Dijkstra computes the minimum-cost distance from a start node to every
// node reachable from it, walking edges produced on demand by
// node.Weighted. Weights are unsigned, so negative edges cannot occur.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V, E count the reachable subgraph
//	   • Each node is settled at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) to store distance and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrPredicateNil    if Nearest got a nil predicate.
//	– ErrBadInfThreshold if InfEdgeThreshold == 0.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra[uint32](start, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/nodify/metrics"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrPredicateNil indicates that Nearest was called with a nil predicate.
	ErrPredicateNil = errors.New("dijkstra: predicate is nil")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (nodes beyond are skipped).
//
//	Default is math.MaxUint64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxUint64.
type Options struct {
	Ctx              context.Context      // Cancellation, checked once per settled node
	ReturnPath       bool                 // Whether to return the predecessor map
	MaxDistance      uint64               // Maximum distance to explore
	InfEdgeThreshold uint64               // Weight threshold above which edges are non-traversable
	Logger           logrus.FieldLogger   // Debug record per run
	TracerProvider   trace.TracerProvider // Nil means the global provider
	Metrics          *metrics.Collector   // Optional counters

	err error // first invalid option, reported by the run
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets the context checked between settled nodes.
// A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max are not explored.
func WithMaxDistance(max uint64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// A zero threshold is reported as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold uint64) Option {
	return func(o *Options) {
		if threshold == 0 {
			if o.err == nil {
				o.err = ErrBadInfThreshold
			}
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets the tracer provider used for spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

// WithMetrics installs a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *Options) {
		o.Metrics = c
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
// Use this as a starting point for further functional-options overrides.
//
// Defaults:
//   - Ctx:              context.Background().
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      math.MaxUint64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxUint64 (only edges of the maximal weight are impassable).
//   - Logger:           logrus standard logger.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		ReturnPath:       false,
		MaxDistance:      math.MaxUint64,
		InfEdgeThreshold: math.MaxUint64,
		Logger:           logrus.StandardLogger(),
	}
}
