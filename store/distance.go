package store

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/katalvlaran/nodify/node"
)

// DistanceTable maps nodes to their best known distance from the source.
// Absence means the node has not been discovered yet.
type DistanceTable[N comparable, W node.Weight] struct {
	m *xsync.MapOf[N, W]
}

// NewDistanceTable returns an empty table. sizeHint > 0 presizes it.
func NewDistanceTable[N comparable, W node.Weight](sizeHint int) *DistanceTable[N, W] {
	return &DistanceTable[N, W]{m: newMap[N, W](sizeHint)}
}

// Relax stores d for n if n has no entry yet or d is strictly smaller than
// the stored distance. It reports whether the table changed. The compare
// and the write happen atomically for n.
func (t *DistanceTable[N, W]) Relax(n N, d W) bool {
	var improved bool
	t.m.Compute(n, func(old W, loaded bool) (W, bool) {
		if loaded && old <= d {
			improved = false

			return old, false
		}
		improved = true

		return d, false
	})

	return improved
}

// Get returns the distance of n and whether n has an entry.
func (t *DistanceTable[N, W]) Get(n N) (W, bool) {
	return t.m.Load(n)
}

// Len returns the number of discovered nodes.
func (t *DistanceTable[N, W]) Len() int { return t.m.Size() }

// Range calls fn for every entry until fn returns false. Entries written
// concurrently with Range may or may not be observed.
func (t *DistanceTable[N, W]) Range(fn func(n N, d W) bool) {
	t.m.Range(fn)
}

// Snapshot copies the table into a plain map.
func (t *DistanceTable[N, W]) Snapshot() map[N]W {
	out := make(map[N]W, t.m.Size())
	t.m.Range(func(n N, d W) bool {
		out[n] = d

		return true
	})

	return out
}
