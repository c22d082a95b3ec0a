// Package dijkstra provides the exact single-source shortest-path reference
// for implicit weighted graphs with unsigned edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum distance from a start node to every
//     reachable node in O((V + E) log V) time over the reachable subgraph.
//   - Nearest returns the closest node satisfying a predicate and stops as
//     soon as that node is settled.
//   - Both run on one goroutine with a min-heap (container/heap).
//
// When to use:
//
//   - As the baseline the parallel delta package is checked against.
//   - When the graph is small or the match is close to the start: Nearest
//     stops early, while Delta-Stepping always settles everything.
//
// Key features:
//
//   - ReturnPath: if enabled, returns a predecessor map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance, which also
//     bounds work on infinite graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - WithContext: cancellation between settled nodes.
//
// Error handling (sentinel errors):
//
//   - ErrBadInfThreshold:
//     Returned if you set InfEdgeThreshold to zero.
//   - ErrPredicateNil:
//     Returned if Nearest gets a nil predicate.
//
// API reference:
//
//	func Dijkstra[W node.Weight, N node.Weighted[N, W]](
//	    start N,
//	    opts ...Option,
//	) (dist map[N]W, prev map[N]N, err error)
//
//	func Nearest[W node.Weight, N node.Weighted[N, W]](
//	    start N,
//	    pred node.Predicate[N],
//	    opts ...Option,
//	) (match N, dist W, found bool, err error)
//
// Thread safety:
//
//   - Calls share no state; Outgoing implementations must tolerate
//     concurrent calls if several runs happen at once.
package dijkstra
