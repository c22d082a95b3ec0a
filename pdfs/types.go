// Package pdfs defines options and errors for the parallel depth-first
// search.
package pdfs

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/nodify/metrics"
)

// DefaultBatchSize bounds the pop/expand steps of one batch.
const DefaultBatchSize = 50_000

// Sentinel errors.
var (
	// ErrPredicateNil is returned when a nil predicate is passed to a query.
	ErrPredicateNil = errors.New("pdfs: predicate is nil")

	// ErrOptionViolation indicates an invalid option value (e.g. zero workers).
	ErrOptionViolation = errors.New("pdfs: option violation")
)

// Option configures a parallel DFS engine.
type Option func(*Options)

// Options holds configurable parameters for parallel DFS queries.
type Options struct {
	// Ctx allows cancellation or timeouts; checked between batch steps
	// and between rounds.
	Ctx context.Context

	// Workers is the pool size T. Default: runtime.GOMAXPROCS(0).
	Workers int

	// BatchSize caps the steps a single batch runs before its residual
	// frontier goes back to the shared one. Default: DefaultBatchSize.
	BatchSize int

	// Logger receives debug records at the end of every query.
	Logger logrus.FieldLogger

	// TracerProvider supplies the tracer; nil means the global provider.
	TracerProvider trace.TracerProvider

	// Metrics, if non-nil, receives expansion, round and search counters.
	Metrics *metrics.Collector

	// err is the first invalid option seen; queries return it.
	err error
}

// DefaultOptions returns Options with one worker per available CPU and
// DefaultBatchSize.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   runtime.GOMAXPROCS(0),
		BatchSize: DefaultBatchSize,
		Logger:    logrus.StandardLogger(),
	}
}

// WithContext sets the query context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker count. n < 1 is an option violation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.setErr(fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n))
			return
		}
		o.Workers = n
	}
}

// WithBatchSize sets the per-batch step limit. n < 1 is an option violation.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.setErr(fmt.Errorf("%w: batch size must be >= 1, got %d", ErrOptionViolation, n))
			return
		}
		o.BatchSize = n
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
	return func(o *Options) { o.TracerProvider = tp }
}

// WithMetrics installs a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *Options) { o.Metrics = c }
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
