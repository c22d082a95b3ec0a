package node

import "iter"

// Node is the capability set of an unweighted implicit-graph vertex.
// N is the node type itself, so a type T satisfies Node[T] when it is
// comparable and has a method Outgoing() iter.Seq[T].
type Node[N any] interface {
	comparable

	// Outgoing yields the successors of the node. The sequence may be
	// empty, finite or infinite; engines stop pulling from it when they no
	// longer need values.
	Outgoing() iter.Seq[N]
}

// Weight is any unsigned integer kind usable as an edge weight.
type Weight interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Weighted is the capability set of a vertex with non-negative edge
// weights, as consumed by delta and dijkstra.
type Weighted[N any, W Weight] interface {
	comparable

	// WeightedOutgoing yields (weight, successor) pairs.
	WeightedOutgoing() iter.Seq2[W, N]
}

// Valuer exposes the value a node stands for.
type Valuer[V any] interface {
	Value() V
}

// Predicate is a caller-supplied test defining the search target.
type Predicate[N any] func(N) bool

// Project lifts a predicate over values into a predicate over nodes.
// N is usually given explicitly and V inferred:
//
//	pred := node.Project[Func[int]](func(v int) bool { return v == 42 })
func Project[N Valuer[V], V any](pred func(V) bool) Predicate[N] {
	return func(n N) bool {
		return pred(n.Value())
	}
}
