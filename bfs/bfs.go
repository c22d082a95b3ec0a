// Package bfs provides breadth-first search over implicit graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/nodify/internal/telemetry"
	"github.com/katalvlaran/nodify/metrics"
	"github.com/katalvlaran/nodify/node"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N any] struct {
	n     N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N node.Node[N]] struct {
	opts    BFSOptions
	hooks   hooks[N]
	ctx     context.Context
	pred    node.Predicate[N] // nil for a full traversal
	queue   []queueItem[N]
	visited map[N]bool
	res     *Result[N]
	match   *queueItem[N]

	expanded int
}

// BFS runs breadth-first search from start, applying any number of
// functional Options. Returns ErrOptionViolation for bad options, the
// context error on cancellation, or any user-supplied hook error; the
// partial result is returned alongside hook and context errors.
//
// A reachable subgraph that is infinite needs WithMaxDepth or a context
// deadline to terminate.
func BFS[N node.Node[N]](start N, opts ...Option) (*Result[N], error) {
	w, err := newWalker(start, nil, opts)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.Start(w.opts.Ctx, w.opts.TracerProvider, metrics.EngineBFS, "BFS")
	w.ctx = ctx
	err = w.loop()
	w.finish(span, err == nil, err)

	return w.res, err
}

// FindNearest returns a node satisfying pred with the fewest edges from
// start, together with that edge count. Nodes are tested as they are
// dequeued, so the first match is at minimal depth.
func FindNearest[N node.Node[N]](start N, pred node.Predicate[N], opts ...Option) (N, int, bool, error) {
	var zero N
	if pred == nil {
		return zero, 0, false, ErrPredicateNil
	}
	w, err := newWalker(start, pred, opts)
	if err != nil {
		return zero, 0, false, err
	}

	ctx, span := telemetry.Start(w.opts.Ctx, w.opts.TracerProvider, metrics.EngineBFS, "FindNearest")
	w.ctx = ctx
	err = w.loop()
	found := err == nil && w.match != nil
	w.finish(span, found, err)
	if !found {
		return zero, 0, false, err
	}

	return w.match.n, w.match.depth, true, nil
}

// newWalker builds options and catches any invalid ones immediately.
func newWalker[N node.Node[N]](start N, pred node.Predicate[N], opts []Option) (*walker[N], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	h, err := resolveHooks[N](&o)
	if err != nil {
		return nil, err
	}

	w := &walker[N]{
		opts:    o,
		hooks:   h,
		ctx:     o.Ctx,
		pred:    pred,
		visited: make(map[N]bool),
		res: &Result[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}
	// Seed queue with start node (no parent)
	w.enqueue(start, 0, nil)

	return w, nil
}

// enqueue marks n visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[N]) enqueue(n N, d int, parent *N) {
	w.visited[n] = true
	w.res.Depth[n] = d
	if parent != nil {
		w.res.Parent[n] = *parent
	}
	w.hooks.onEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{n: n, depth: d})
}

// loop processes the queue until empty, match, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.pred != nil && w.pred(item.n) {
			w.match = &item
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.hooks.onDequeue(item.n, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.n)
	if err := w.hooks.onVisit(item.n, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.n, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen successor.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	w.expanded++
	for nbr := range item.n.Outgoing() {
		if !w.hooks.filterNeighbor(item.n, nbr) {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, &item.n)
		}
	}
}

// finish closes the span and reports counters and the debug record.
func (w *walker[N]) finish(span trace.Span, found bool, err error) {
	telemetry.Finish(span, found, err,
		attribute.Int("expanded", w.expanded),
		attribute.Int("visited", len(w.res.Order)),
	)
	w.opts.Metrics.Expanded(metrics.EngineBFS, w.expanded)
	w.opts.Metrics.Searched(metrics.EngineBFS, found, err)
	telemetry.Logger(w.opts.Logger).WithFields(logrus.Fields{
		"engine":   metrics.EngineBFS,
		"expanded": w.expanded,
		"visited":  len(w.res.Order),
		"found":    found,
	}).Debug("bfs: traversal finished")
}
