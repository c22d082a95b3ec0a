package store

import "github.com/puzpuzpuz/xsync/v3"

// VisitedSet records nodes already expanded.
type VisitedSet[N comparable] struct {
	m *xsync.MapOf[N, struct{}]
}

// NewVisitedSet returns an empty set. sizeHint > 0 presizes the table.
func NewVisitedSet[N comparable](sizeHint int) *VisitedSet[N] {
	return &VisitedSet[N]{m: newMap[N, struct{}](sizeHint)}
}

// Insert adds n and reports whether it was absent before the call.
func (s *VisitedSet[N]) Insert(n N) bool {
	_, loaded := s.m.LoadOrStore(n, struct{}{})

	return !loaded
}

// Contains reports whether n has been inserted.
func (s *VisitedSet[N]) Contains(n N) bool {
	_, ok := s.m.Load(n)

	return ok
}

// Len returns the number of inserted nodes.
func (s *VisitedSet[N]) Len() int { return s.m.Size() }

// newMap builds an xsync map, presized when sizeHint is positive.
func newMap[K comparable, V any](sizeHint int) *xsync.MapOf[K, V] {
	if sizeHint > 0 {
		return xsync.NewMapOf[K, V](xsync.WithPresize(sizeHint))
	}

	return xsync.NewMapOf[K, V]()
}
