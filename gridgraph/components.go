package gridgraph

import (
	"slices"

	"github.com/katalvlaran/nodify/bfs"
)

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// according to gg.Conn connectivity, in row-major order of their first cell.
// Each component is a sorted slice of row-major cell indices.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Every island is one bfs traversal from its first unseen cell; Cell.Outgoing
// keeps the traversal on land.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) || seen[gg.index(x, y)] {
				continue
			}
			// Traversal over an in-memory grid with no options cannot fail.
			res, _ := bfs.BFS(Cell{X: x, Y: y, g: gg})
			comp := make([]int, 0, len(res.Order))
			for _, c := range res.Order {
				seen[c.Index()] = true
				comp = append(comp, c.Index())
			}
			slices.Sort(comp)
			comps = append(comps, comp)
		}
	}

	return comps
}
