package gridgraph

import (
	"fmt"
	"iter"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		cells:         cells,
		offsets:       offsets,
	}, nil
}

// From2D builds a GridGraph with the default LandThreshold and the given
// connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// At returns the cell at (x,y), or ErrOutOfBounds.
func (gg *GridGraph) At(x, y int) (Cell, error) {
	if !gg.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return Cell{X: x, Y: y, g: gg}, nil
}

// Value returns the original grid value at (x,y); the caller ensures bounds.
func (gg *GridGraph) Value(x, y int) int { return gg.cells[y][x] }

// IsLand reports whether (x,y) holds land; the caller ensures bounds.
func (gg *GridGraph) IsLand(x, y int) bool { return gg.cells[y][x] >= gg.LandThreshold }

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// cell builds the node for a row-major index.
func (gg *GridGraph) cell(idx int) Cell {
	x, y := gg.Coordinate(idx)

	return Cell{X: x, Y: y, g: gg}
}

// neighbors yields in-bounds neighbor cells in offset order.
func (c Cell) neighbors() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range c.g.offsets {
			nx, ny := c.X+d[0], c.Y+d[1]
			if !c.g.InBounds(nx, ny) {
				continue
			}
			if !yield(Cell{X: nx, Y: ny, g: c.g}) {
				return
			}
		}
	}
}

// Outgoing yields neighbors of the same kind as c.
func (c Cell) Outgoing() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		land := c.IsLand()
		for n := range c.neighbors() {
			if n.IsLand() != land {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// WeightedOutgoing yields every neighbor with its conversion cost: 0 for
// land, 1 for water.
func (c Cell) WeightedOutgoing() iter.Seq2[uint32, Cell] {
	return func(yield func(uint32, Cell) bool) {
		for n := range c.neighbors() {
			var cost uint32
			if !n.IsLand() {
				cost = 1
			}
			if !yield(cost, n) {
				return
			}
		}
	}
}

// Value returns the grid value under c.
func (c Cell) Value() int { return c.g.cells[c.Y][c.X] }

// IsLand reports whether c holds land.
func (c Cell) IsLand() bool { return c.Value() >= c.g.LandThreshold }

// Index returns the row-major index of c.
func (c Cell) Index() int { return c.g.index(c.X, c.Y) }

// String formats c as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }
