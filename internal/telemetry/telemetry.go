// Package telemetry holds the tracing and logging plumbing shared by the
// engines.
package telemetry

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer every engine uses.
const InstrumentationName = "github.com/katalvlaran/nodify"

// Tracer resolves a tracer from tp, falling back to the global provider.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return tp.Tracer(InstrumentationName)
}

// Start opens a span named "<engine>.<op>" tagged with the engine name.
func Start(ctx context.Context, tp trace.TracerProvider, engine, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("engine", engine))

	return Tracer(tp).Start(ctx, engine+"."+op, trace.WithAttributes(attrs...))
}

// Finish records the outcome on span and ends it.
func Finish(span trace.Span, found bool, err error, attrs ...attribute.KeyValue) {
	span.SetAttributes(append(attrs, attribute.Bool("found", found))...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// Logger returns l, or the logrus standard logger when l is nil.
func Logger(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}

	return l
}
