package bfs_test

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nodify/bfs"
)

// cell is a position on a size×size grid whose edges go right and down.
type cell struct{ i, j int }

const size = 3

func (c cell) String() string { return fmt.Sprintf("%d_%d", c.i, c.j) }

func (c cell) Outgoing() iter.Seq[cell] {
	return func(yield func(cell) bool) {
		if c.j+1 < size && !yield(cell{c.i, c.j + 1}) {
			return
		}
		if c.i+1 < size {
			yield(cell{c.i + 1, c.j})
		}
	}
}

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 cells).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	res, err := bfs.BFS(cell{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleResult_PathTo reconstructs a fewest-hop path through the BFS tree.
func ExampleResult_PathTo() {
	res, err := bfs.BFS(cell{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := res.PathTo(cell{2, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, res.Depth[cell{2, 2}])
	// Output:
	// [0_0 0_1 0_2 1_2 2_2] 4
}

// ExampleFindNearest stops at the first cell of the bottom row.
func ExampleFindNearest() {
	bottom := func(c cell) bool { return c.i == size-1 }

	c, depth, found, err := bfs.FindNearest(cell{}, bottom)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c, depth, found)
	// Output: 2_0 2 true
}
