package dfs_test

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodify/dfs"
	"github.com/katalvlaran/nodify/internal/graphtest"
	"github.com/katalvlaran/nodify/metrics"
	"github.com/katalvlaran/nodify/node"
)

// successor returns the single successor n+1 of n.
func successor(n int) iter.Seq[int] {
	return func(yield func(int) bool) { yield(n + 1) }
}

func TestDFS_NilPredicate(t *testing.T) {
	g := graphtest.Chain(2)
	found, err := dfs.New(g.V(0)).Exists(nil)
	assert.False(t, found)
	assert.ErrorIs(t, err, dfs.ErrPredicateNil)
}

func TestDFS_StartMatchesWithoutExpansion(t *testing.T) {
	g := graphtest.New(1)
	counter := graphtest.NewExpansionCounter()

	got, found, err := dfs.New(g.V(0)).WithOnExpand(counter.Hook).FindAny(graphtest.Is(0))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, g.V(0), got)
	assert.Empty(t, counter.Counts())
	assert.Zero(t, g.Calls(0), "successors of a matching start must not be generated")
}

func TestDFS_TwoNodeCycleTerminates(t *testing.T) {
	g := graphtest.New(2).AddEdge(0, 1, 1).AddEdge(1, 0, 1)
	counter := graphtest.NewExpansionCounter()

	found, err := dfs.New(g.V(0)).WithOnExpand(counter.Hook).Exists(graphtest.Is(7))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, counter.Counts())
}

func TestDFS_ChainFindsLast(t *testing.T) {
	g := graphtest.Chain(10)
	got, found, err := dfs.New(g.V(0)).FindAny(graphtest.Is(9))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 9, got.ID)
}

func TestDFS_UnreachableTarget(t *testing.T) {
	// 0→1, 2 isolated
	g := graphtest.New(3).AddEdge(0, 1, 1)
	found, err := dfs.New(g.V(0)).Exists(graphtest.Is(2))
	require.NoError(t, err)
	assert.False(t, found)
}

// TestDFS_ExhaustsFiniteGraph runs a never-satisfied predicate over a
// 1,000-node graph and checks each reachable node is expanded once.
func TestDFS_ExhaustsFiniteGraph(t *testing.T) {
	g := graphtest.Random(1, 1000, 4000, 9)
	counter := graphtest.NewExpansionCounter()

	found, err := dfs.New(g.V(0)).WithOnExpand(counter.Hook).Exists(graphtest.Never)
	require.NoError(t, err)
	assert.False(t, found)

	reach := g.Reachable(0)
	counts := counter.Counts()
	assert.Len(t, counts, len(reach))
	for id, c := range counts {
		assert.True(t, reach[id], "expanded unreachable node %d", id)
		assert.Equal(t, 1, c, "node %d expanded %d times", id, c)
		assert.EqualValues(t, 1, g.Calls(id))
	}
}

func TestDFS_MatchIsReachable(t *testing.T) {
	g := graphtest.Random(7, 200, 400, 1)
	reach := g.Reachable(0)
	even := func(v graphtest.Vertex) bool { return v.ID%2 == 0 && v.ID > 0 }

	got, found, err := dfs.New(g.V(0)).FindAny(even)
	require.NoError(t, err)

	want := false
	for id := range reach {
		if id%2 == 0 && id > 0 {
			want = true
		}
	}
	assert.Equal(t, want, found)
	if found {
		assert.True(t, even(got))
		assert.True(t, reach[got.ID])
	}
}

func TestDFS_InfiniteGraphWithMatch(t *testing.T) {
	naturals := node.NewBuilder(successor)
	isThousand := node.Project[node.Func[int]](func(v int) bool { return v == 1000 })

	got, found, err := dfs.New(naturals.Build(0)).FindAny(isThousand)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1000, got.Value())
}

func TestDFS_ContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	naturals := node.NewBuilder(successor)

	found, err := dfs.New(naturals.Build(0), dfs.WithContext(ctx)).
		Exists(func(node.Func[int]) bool { return false })
	assert.False(t, found)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDFS_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := graphtest.Chain(3)

	_, found, err := dfs.New(g.V(0), dfs.WithContext(ctx)).FindAny(graphtest.Is(2))
	assert.False(t, found)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_ReusableEngine(t *testing.T) {
	g := graphtest.Diamond()
	e := dfs.New(g.V(graphtest.A))

	for _, target := range []int{graphtest.B, graphtest.C, graphtest.D} {
		found, err := e.Exists(graphtest.Is(target))
		require.NoError(t, err)
		assert.True(t, found, "target %d", target)
	}
}

func TestDFS_Observability(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.New(reg)
	require.NoError(t, err)
	tp, rec := graphtest.Tracing()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := graphtest.Chain(5)
	e := dfs.New(g.V(0), dfs.WithMetrics(collector), dfs.WithTracerProvider(tp), dfs.WithLogger(logger))
	found, err := e.Exists(graphtest.Never)
	require.NoError(t, err)
	require.False(t, found)

	assert.Equal(t, 5.0, graphtest.CounterValue(t, reg, "nodify_expansions_total", map[string]string{"engine": "dfs"}))
	assert.Equal(t, 1.0, graphtest.CounterValue(t, reg, "nodify_searches_total", map[string]string{"engine": "dfs", "outcome": "exhausted"}))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "dfs.FindAny", spans[0].Name())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, false, entry.Data["found"])
	assert.Equal(t, 5, entry.Data["expanded"])
}
