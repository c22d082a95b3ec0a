package metrics_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodify/metrics"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.Expanded(metrics.EngineDFS, 3)
	c.Expanded(metrics.EngineDFS, 0)
	c.Round(metrics.EnginePDFS)
	c.Round(metrics.EnginePDFS)
	c.Relaxed(metrics.KindLight, 4)
	c.Relaxed(metrics.KindHeavy, 1)
	c.Searched(metrics.EngineDelta, true, nil)
	c.Searched(metrics.EngineDelta, false, nil)
	c.Searched(metrics.EngineDelta, false, errors.New("x"))

	expected := `
# HELP nodify_expansions_total Nodes whose outgoing edges were generated.
# TYPE nodify_expansions_total counter
nodify_expansions_total{engine="dfs"} 3
# HELP nodify_relaxations_total Distance improvements applied, by edge class.
# TYPE nodify_relaxations_total counter
nodify_relaxations_total{kind="heavy"} 1
nodify_relaxations_total{kind="light"} 4
# HELP nodify_rounds_total Parallel batch rounds or bucket rounds executed.
# TYPE nodify_rounds_total counter
nodify_rounds_total{engine="pdfs"} 2
# HELP nodify_searches_total Completed queries by outcome.
# TYPE nodify_searches_total counter
nodify_searches_total{engine="delta",outcome="exhausted"} 1
nodify_searches_total{engine="delta",outcome="failed"} 1
nodify_searches_total{engine="delta",outcome="found"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}

func TestCollector_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	assert.Error(t, err)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() {
		c.Expanded(metrics.EngineBFS, 1)
		c.Round(metrics.EngineBFS)
		c.Relaxed(metrics.KindLight, 1)
		c.Searched(metrics.EngineBFS, true, nil)
	})
}

func TestCollector_UnregisteredCollect(t *testing.T) {
	c, err := metrics.New(nil)
	require.NoError(t, err)
	c.Expanded(metrics.EnginePDFS, 2)
	assert.Equal(t, 1, testutil.CollectAndCount(c, "nodify_expansions_total"))
}
