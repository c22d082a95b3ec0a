package gridgraph_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodify/gridgraph"
)

// TestExpandIsland_BasicLine: [1,0,1] needs the middle cell converted.
func TestExpandIsland_BasicLine(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 2)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// TestExpandIsland_MediumRow: [1,0,0,0,1] needs three conversions.
func TestExpandIsland_MediumRow(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 0, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Len(t, path, 5)
}

// TestExpandIsland_TrimsSourcePrefix starts the path at the source cell
// closest to the water crossing.
func TestExpandIsland_TrimsSourcePrefix(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1, 1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []int{2, 3, 4}, path)
}

func TestExpandIsland_SameComponent(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 0)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []int{0}, path)
}

func TestExpandIsland_ComponentIndex(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, pair := range [][2]int{{-1, 0}, {0, 2}, {5, 1}} {
		_, _, err := gg.ExpandIsland(pair[0], pair[1])
		assert.ErrorIs(t, err, gridgraph.ErrComponentIndex, "pair %v", pair)
	}
}

// TestExpandIsland_Random checks path shape on random grids and compares the
// cost with a multi-source 0-1 BFS over plain indices.
func TestExpandIsland_Random(t *testing.T) {
	for seed := uint64(0); seed < 6; seed++ {
		gg, err := gridgraph.From2D(randomGrid(seed, 16, 12, 0.35), gridgraph.Conn4)
		require.NoError(t, err)
		comps := gg.ConnectedComponents()
		if len(comps) < 2 {
			continue
		}

		for dst := 1; dst < len(comps) && dst < 6; dst++ {
			path, cost, err := gg.ExpandIsland(0, dst)
			require.NoError(t, err)
			require.NotEmpty(t, path)

			_, inSrc := slices.BinarySearch(comps[0], path[0])
			assert.True(t, inSrc, "path starts in source")
			_, inDst := slices.BinarySearch(comps[dst], path[len(path)-1])
			assert.True(t, inDst, "path ends in destination")

			water := 0
			for i, idx := range path {
				x, y := gg.Coordinate(idx)
				if !gg.IsLand(x, y) {
					water++
				}
				if i > 0 {
					_, again := slices.BinarySearch(comps[0], idx)
					assert.False(t, again, "source cell after the first step")
					px, py := gg.Coordinate(path[i-1])
					assert.Equal(t, 1, abs(px-x)+abs(py-y), "step %d not adjacent", i)
				}
			}
			assert.Equal(t, cost, water)
			assert.Equal(t, zeroOneCost(gg, comps[0], comps[dst]), cost, "seed %d dst %d", seed, dst)
		}
	}
}

// zeroOneCost is a reference multi-source 0-1 BFS over row-major indices.
func zeroOneCost(gg *gridgraph.GridGraph, src, dst []int) int {
	n := gg.Width * gg.Height
	dist := make([]int, n)
	for i := range dist {
		dist[i] = n + 1
	}
	var deque []int
	for _, i := range src {
		dist[i] = 0
		deque = append(deque, i)
	}
	for len(deque) > 0 {
		u := deque[0]
		deque = deque[1:]
		ux, uy := gg.Coordinate(u)
		for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			step := 0
			if !gg.IsLand(vx, vy) {
				step = 1
			}
			v := vy*gg.Width + vx
			if dist[u]+step < dist[v] {
				dist[v] = dist[u] + step
				if step == 0 {
					deque = append([]int{v}, deque...)
				} else {
					deque = append(deque, v)
				}
			}
		}
	}
	best := n + 1
	for _, i := range dst {
		best = min(best, dist[i])
	}

	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
