package gridgraph

import (
	"slices"

	"github.com/katalvlaran/nodify/dijkstra"
)

// ExpandIsland finds a minimum‐conversion path of “water” cells
// to connect any cell in component srcComp to any cell in component dstComp,
// as identified by ConnectedComponents(). Each water‐cell conversion costs 1.
// Returns the sequence of cell‐indices (row‐major) representing the path
// (including the start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Weighted search over Cell.WeightedOutgoing from the first srcComp cell:
//     • Moving into a land cell  → cost 0
//     • Moving into a water cell → cost 1
//     Land inside srcComp is free, so one start equals starting from all of srcComp.
//  3. Pick the cheapest dstComp cell.
//  4. Reconstruct path via predecessors and drop the srcComp prefix.
//
// Complexity: O(W·H·d·log(W·H)).
// Memory:     O(W·H) for distance and prev maps.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	src := comps[srcComp]

	dist, prev, err := dijkstra.Dijkstra[uint32](gg.cell(src[0]), dijkstra.WithReturnPath())
	if err != nil {
		return nil, 0, err
	}

	target, best := -1, uint32(0)
	for _, i := range comps[dstComp] {
		d, ok := dist[gg.cell(i)]
		if ok && (target < 0 || d < best) {
			target, best = i, d
		}
	}
	if target < 0 {
		return nil, 0, ErrNoPath
	}

	for at, ok := gg.cell(target), true; ok; at, ok = prev[at] {
		path = append(path, at.Index())
	}
	slices.Reverse(path)

	// Keep only the last srcComp cell the path leaves from.
	cut := 0
	for i, idx := range path {
		if _, found := slices.BinarySearch(src, idx); found {
			cut = i
		}
	}

	return path[cut:], int(best), nil
}
