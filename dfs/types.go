// Package dfs defines options and errors for the sequential depth-first
// search over implicit graphs.
package dfs

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/nodify/metrics"
)

// ErrPredicateNil is returned when a nil predicate is passed to a query.
var ErrPredicateNil = errors.New("dfs: predicate is nil")

// Option configures optional behavior of a DFS engine.
// Use with New(start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS queries.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per popped node.
	Ctx context.Context

	// Logger receives debug records at the end of every query.
	// Defaults to the logrus standard logger.
	Logger logrus.FieldLogger

	// TracerProvider supplies the tracer for per-query spans.
	// Nil means the global OpenTelemetry provider.
	TracerProvider trace.TracerProvider

	// Metrics, if non-nil, receives expansion and search counters.
	Metrics *metrics.Collector
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - logrus standard logger
//   - global tracer provider
//   - no metrics
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		Logger:         logrus.StandardLogger(),
		TracerProvider: nil,
		Metrics:        nil,
	}
}

// WithContext returns an Option that sets the Context for DFS queries.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *DFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets the tracer provider used for spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *DFSOptions) {
		o.TracerProvider = tp
	}
}

// WithMetrics installs a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *DFSOptions) {
		o.Metrics = c
	}
}
