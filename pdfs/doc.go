// Package pdfs implements a parallel depth-first search over implicit
// graphs.
//
// The engine answers the same questions as package dfs (Exists, FindAny)
// and returns the same boolean for any worker count or batch size. Which
// matching node FindAny returns is not fixed when several match.
//
// Scheduling:
//
// The engine owns one shared frontier, kept in stack order, and one
// concurrent visited set. Each iteration compares the frontier length L
// with the worker count T:
//
//   - L < T: one batch runs on the calling goroutine, popping and
//     expanding up to BatchSize nodes.
//   - L >= T: the T nodes on top of the frontier become T single-node
//     batches that run on the worker pool. Each batch grows a private
//     frontier; what is left of it when the batch hits BatchSize steps is
//     appended back to the shared frontier, in batch order, once the
//     whole round has returned.
//
// A step pops a node and tests the predicate before consulting the
// visited set, so a matching start node is returned without expansion.
// The visited set decides which worker expands a node, and each node is
// expanded at most once per query.
//
// A match sets a shared stop flag. Running batches notice it at their
// next step, the round drains, and no further round is started.
//
// Errors:
//
//   - ErrPredicateNil    if pred is nil.
//   - ErrOptionViolation if WithWorkers or WithBatchSize got a value < 1.
//   - context errors     if the configured context is done.
//
// A panic raised by the predicate, the expansion hook or Outgoing is
// raised again, with the same value, on the goroutine that called the
// query.
package pdfs
