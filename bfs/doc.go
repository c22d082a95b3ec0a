// Package bfs provides breadth-first search over implicit graphs, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - BFS returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - FindNearest returns a fewest-edges node matching a predicate, and
//     stops there.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Successors are enqueued in the order Outgoing yields them, so the visit
//	sequence is reproducible whenever Outgoing is.
//
// Complexity (V, E over the reachable subgraph)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(n Cell, depth int) error { return nil }),
//	)
//
// Hook options are generic; their node type must match the start node's,
// otherwise the run fails with ErrOptionViolation.
//
// Errors
//
//   - ErrOptionViolation if invalid Option (negative MaxDepth, mistyped hook).
//   - ErrPredicateNil    if FindNearest gets a nil predicate.
//   - ErrNotReached      from Result.PathTo for a node never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - Context errors.
package bfs
