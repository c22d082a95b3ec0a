package dfs

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/nodify/internal/telemetry"
	"github.com/katalvlaran/nodify/metrics"
	"github.com/katalvlaran/nodify/node"
)

// DFS is a sequential depth-first search rooted at a start node.
// A DFS value is immutable; every query allocates its own state.
type DFS[N node.Node[N]] struct {
	start    N
	opts     DFSOptions
	onExpand func(N)
}

// New returns a DFS engine rooted at start.
func New[N node.Node[N]](start N, opts ...Option) *DFS[N] {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &DFS[N]{start: start, opts: o}
}

// WithOnExpand returns a copy of d that calls fn each time a node is
// expanded, right before its successors are generated. fn runs at most
// once per distinct node and query.
func (d *DFS[N]) WithOnExpand(fn func(N)) *DFS[N] {
	cp := *d
	cp.onExpand = fn

	return &cp
}

// Exists reports whether a node reachable from the start satisfies pred.
func (d *DFS[N]) Exists(pred node.Predicate[N]) (bool, error) {
	_, found, err := d.FindAny(pred)

	return found, err
}

// FindAny returns a reachable node satisfying pred. The boolean is false
// when the reachable graph holds no match.
func (d *DFS[N]) FindAny(pred node.Predicate[N]) (N, bool, error) {
	var zero N
	if pred == nil {
		return zero, false, ErrPredicateNil
	}

	ctx, span := telemetry.Start(d.opts.Ctx, d.opts.TracerProvider, metrics.EngineDFS, "FindAny")
	w := &walker[N]{
		stack:    []N{d.start},
		visited:  make(map[N]struct{}),
		onExpand: d.onExpand,
	}
	match, found, err := w.search(ctx, pred)

	telemetry.Finish(span, found, err, attribute.Int("expanded", w.expanded))
	d.opts.Metrics.Expanded(metrics.EngineDFS, w.expanded)
	d.opts.Metrics.Searched(metrics.EngineDFS, found, err)
	telemetry.Logger(d.opts.Logger).WithFields(logrus.Fields{
		"engine":   metrics.EngineDFS,
		"expanded": w.expanded,
		"found":    found,
	}).Debug("dfs: search finished")

	return match, found, err
}

// walker encapsulates state during one query.
type walker[N node.Node[N]] struct {
	stack    []N
	visited  map[N]struct{}
	onExpand func(N)
	expanded int
}

// search pops until a match is found or the stack is empty.
func (w *walker[N]) search(ctx context.Context, pred node.Predicate[N]) (N, bool, error) {
	var zero N
	var n N
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-ctx.Done():
			return zero, false, ctx.Err()
		default:
		}

		// 2. Pop and test before the visited check
		n = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if pred(n) {
			return n, true, nil
		}

		// 3. Expand on first visit only
		if _, seen := w.visited[n]; seen {
			continue
		}
		w.visited[n] = struct{}{}
		w.expand(n)
	}

	return zero, false, nil
}

// expand pushes every successor of n that is not yet visited.
func (w *walker[N]) expand(n N) {
	w.expanded++
	if w.onExpand != nil {
		w.onExpand(n)
	}
	for next := range n.Outgoing() {
		if _, seen := w.visited[next]; !seen {
			w.stack = append(w.stack, next)
		}
	}
}
