package store

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/katalvlaran/nodify/node"
)

// BucketMap is a concurrent multimap from bucket index to pending nodes.
type BucketMap[N comparable, W node.Weight] struct {
	m *xsync.MapOf[W, []N]
}

// NewBucketMap returns an empty bucket map.
func NewBucketMap[N comparable, W node.Weight]() *BucketMap[N, W] {
	return &BucketMap[N, W]{m: xsync.NewMapOf[W, []N]()}
}

// Push appends n to the bucket at index.
func (b *BucketMap[N, W]) Push(index W, n N) {
	b.m.Compute(index, func(old []N, _ bool) ([]N, bool) {
		return append(old, n), false
	})
}

// Take removes the bucket at index and returns its nodes, nil if the
// bucket does not exist. A Push that happens after Take starts a fresh
// bucket, so the returned slice is owned by the caller.
func (b *BucketMap[N, W]) Take(index W) []N {
	nodes, _ := b.m.LoadAndDelete(index)

	return nodes
}

// Min returns the lowest index holding at least one node.
func (b *BucketMap[N, W]) Min() (W, bool) {
	var (
		lowest W
		found  bool
	)
	b.m.Range(func(index W, nodes []N) bool {
		if len(nodes) > 0 && (!found || index < lowest) {
			lowest, found = index, true
		}

		return true
	})

	return lowest, found
}

// Len returns the number of buckets currently held.
func (b *BucketMap[N, W]) Len() int { return b.m.Size() }
