package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/nodify/internal/telemetry"
)

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestStartFinish_Found(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	_, span := telemetry.Start(context.Background(), tp, "dfs", "FindAny", attribute.Int("workers", 3))
	telemetry.Finish(span, true, nil, attribute.Int("expanded", 7))

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "dfs.FindAny", ended[0].Name())
	assert.Equal(t, codes.Ok, ended[0].Status().Code)

	a := attrs(ended[0])
	assert.Equal(t, "dfs", a["engine"].AsString())
	assert.Equal(t, int64(3), a["workers"].AsInt64())
	assert.Equal(t, int64(7), a["expanded"].AsInt64())
	assert.True(t, a["found"].AsBool())
}

func TestStartFinish_Error(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	_, span := telemetry.Start(context.Background(), tp, "delta", "Nearest")
	telemetry.Finish(span, false, errors.New("boom"))

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
	require.NotEmpty(t, ended[0].Events())
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
	assert.False(t, attrs(ended[0])["found"].AsBool())
}

func TestStart_NilProvider(t *testing.T) {
	ctx, span := telemetry.Start(context.Background(), nil, "bfs", "BFS")
	require.NotNil(t, ctx)
	assert.NotPanics(t, func() { telemetry.Finish(span, false, nil) })
}

func TestLogger(t *testing.T) {
	assert.Same(t, logrus.StandardLogger(), telemetry.Logger(nil))

	l, hook := logtest.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	telemetry.Logger(l).WithField("engine", "dfs").Debug("done")

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "dfs", hook.LastEntry().Data["engine"])
}
