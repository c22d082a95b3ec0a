package delta

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/nodify/metrics"
)

// Sentinel errors.
var (
	// ErrZeroDelta is returned by every query of an engine whose bucket
	// width is zero. New leaves delta at zero until WithDelta is called.
	ErrZeroDelta = errors.New("delta: bucket width is zero")

	// ErrPredicateNil is returned when a nil predicate is passed to a query.
	ErrPredicateNil = errors.New("delta: predicate is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("delta: option violation")
)

// Option configures a DeltaStepping engine.
type Option func(*Options)

// Options holds configurable parameters for Delta-Stepping queries.
type Options struct {
	// Ctx allows cancellation or timeouts; checked per processed node.
	Ctx context.Context

	// Workers is the pool size. Default: runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives debug records at the end of every query.
	Logger logrus.FieldLogger

	// TracerProvider supplies the tracer; nil means the global provider.
	TracerProvider trace.TracerProvider

	// Metrics, if non-nil, receives expansion, round, relaxation and
	// search counters.
	Metrics *metrics.Collector

	err error
}

// DefaultOptions returns Options with one worker per available CPU.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  logrus.StandardLogger(),
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
			if o.err == nil {
				o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)
			}
			return
		}
		o.Workers = n
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
