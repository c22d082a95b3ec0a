// Package delta implements parallel Delta-Stepping over implicit weighted
// graphs, answering "which reachable node matching a predicate is closest
// to the start?".
//
// Nodes satisfy node.Weighted: WeightedOutgoing yields (weight, successor)
// pairs with unsigned integer weights. Each query settles the whole
// reachable subgraph, so the reachable subgraph must be finite.
//
// Algorithm:
//
// Tentative distances live in a concurrent distance table, pending nodes in
// buckets keyed by distance / delta. The start node has distance 0 and sits
// in bucket 0. Then, until no bucket holds a node:
//
//  1. Pick the lowest non-empty bucket i.
//  2. Take bucket i, deduplicate it and split it across the workers. A node
//     whose distance now maps below i was settled earlier and is skipped.
//     For every edge (w, next), light edges (w <= delta) are relaxed at
//     once, possibly refilling bucket i; heavy edges (w > delta) are kept
//     for later. Repeat while bucket i refills.
//  3. Relax the kept heavy edges in parallel.
//
// A relaxation writes d into the table only if it beats the stored
// distance and then pushes the node into bucket d / delta. Stale bucket
// entries are never removed; step 2 skips them.
//
// Once the buckets are empty the table holds exact shortest distances. The
// query result is the matching entry with the smallest distance, found by
// a parallel scan of a snapshot of the table. Ties are broken arbitrarily.
//
// Delta only changes how work is scheduled: the distances, and so the
// distance of the returned node, are the same for every delta > 0.
//
// Errors:
//
//   - ErrZeroDelta       if the engine has delta == 0.
//   - ErrPredicateNil    if pred is nil.
//   - ErrOptionViolation if WithWorkers got a value < 1.
//   - context errors     if the configured context is done.
//
// Distances are not checked for overflow of W.
package delta
