package gridgraph

import (
	"context"

	"github.com/katalvlaran/nodify/pdfs"
)

// SameRegion reports whether a and b lie in one region: a set of same-kind
// cells (all land or all water) joined under gg.Conn connectivity.
// The check runs a parallel depth-first search from a with the given number
// of workers and honors ctx.
//
// Returns ErrOutOfBounds if either cell does not belong to gg.
func (gg *GridGraph) SameRegion(ctx context.Context, a, b Cell, workers int) (bool, error) {
	if a.g != gg || b.g != gg {
		return false, ErrOutOfBounds
	}
	if a.IsLand() != b.IsLand() {
		return false, nil
	}

	return pdfs.New(a, pdfs.WithContext(ctx), pdfs.WithWorkers(workers)).
		Exists(func(c Cell) bool { return c == b })
}
