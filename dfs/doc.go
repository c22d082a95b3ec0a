// Package dfs implements a sequential depth‑first search over implicit
// graphs: nodes are values satisfying node.Node and edges are produced on
// demand by Outgoing.
//
// What:
//
//   - Exists(pred): reports whether any node reachable from the start
//     satisfies pred.
//   - FindAny(pred): returns such a node.
//
// The engine is the correctness baseline for the parallel engines in
// pdfs and delta: single goroutine, plain map as visited set, slice as
// stack.
//
// Algorithm:
//
//  1. Push the start node.
//  2. Pop a node and test the predicate on it. A match returns at once,
//     so a matching start node is returned without any expansion.
//  3. If the node was not visited yet, mark it, then push every successor
//     not already visited.
//  4. An empty stack means no reachable node matches.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable subgraph.
//   - Memory: O(V) for the visited set, O(E) worst case for the stack.
//
// A reachable subgraph that is infinite and holds no match makes the
// search run forever; bound it in the predicate, in Outgoing, or with a
// context deadline (WithContext).
//
// Errors:
//
//   - ErrPredicateNil   if pred is nil.
//   - context errors    if the configured context is done.
package dfs
