// Package node defines the contract every implicit-graph vertex satisfies,
// plus small adapters that turn plain values into nodes.
//
// What:
//
//   - Node[N]: a comparable value with Outgoing() iter.Seq[N].
//     Successors are produced lazily; the sequence may be infinite and is
//     re-derived on every call.
//   - Weighted[N, W]: a comparable value with WeightedOutgoing() producing
//     (weight, successor) pairs over an unsigned Weight.
//   - Valuer[V] and Project: let a predicate look at a projected value
//     instead of the node itself.
//   - Builder / Func and WeightedBuilder / WeightedFunc: closure adapters
//     pairing a current value with a transition function.
//
// Identity:
//
//	Two nodes are the same vertex iff they are == under Go equality.
//	A node may keep data that does not take part in identity behind a
//	pointer shared by all equal nodes (a memoized successor table, the
//	builder of a Func), so equality effectively ignores it.
//
// Engines (dfs, pdfs, delta, dijkstra, bfs) depend only on the
// constraints; the adapters are conveniences.
package node
