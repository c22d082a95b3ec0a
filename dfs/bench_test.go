package dfs_test

import (
	"testing"

	"github.com/katalvlaran/nodify/dfs"
	"github.com/katalvlaran/nodify/internal/graphtest"
)

// BenchmarkDFS_Chain10000 measures exhaustive search on a 10,000-node chain.
// Complexity: O(V + E) per iteration.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := graphtest.Chain(10000)
	e := dfs.New(g.V(0))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = e.Exists(graphtest.Never)
	}
}

// BenchmarkDFS_Random measures exhaustive search on a random sparse graph.
func BenchmarkDFS_Random(b *testing.B) {
	g := graphtest.Random(42, 20000, 80000, 10)
	e := dfs.New(g.V(0))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = e.Exists(graphtest.Never)
	}
}
