// Package dijkstra implements Dijkstra's shortest-path algorithm on implicit
// weighted graphs.
//
// It processes nodes in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Nodes never reached are absent from the distance map; there is no
//     vertex set to pre-fill with +∞.
package dijkstra

import (
	"container/heap"
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/nodify/internal/telemetry"
	"github.com/katalvlaran/nodify/metrics"
	"github.com/katalvlaran/nodify/node"
)

// Dijkstra computes shortest distances from start to every node reachable
// from it. The weight type parameter comes first so callers can name it
// alone: Dijkstra[uint32](start).
//
// Returns:
//
//   - dist: map from node to minimum distance; unreached nodes are absent.
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     The start node has no entry.
//   - err:  ErrBadInfThreshold, or the context error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[W node.Weight, N node.Weighted[N, W]](start N, opts ...Option) (map[N]W, map[N]N, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Run to exhaustion (no target).
	ctx, span := telemetry.Start(cfg.Ctx, cfg.TracerProvider, metrics.EngineDijkstra, "Dijkstra")
	r := newRunner[W, N](cfg)
	r.init(start)
	_, _, err := r.process(ctx, nil)
	r.finish(span, err == nil, err)
	if err != nil {
		return nil, nil, err
	}

	// 3) Return prev only when asked for.
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Nearest settles nodes in increasing distance order and returns the first
// one satisfying pred together with its distance. The boolean is false when
// no reachable node (within MaxDistance) matches.
func Nearest[W node.Weight, N node.Weighted[N, W]](start N, pred node.Predicate[N], opts ...Option) (N, W, bool, error) {
	var (
		zeroN N
		zeroW W
	)
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return zeroN, zeroW, false, cfg.err
	}
	if pred == nil {
		return zeroN, zeroW, false, ErrPredicateNil
	}

	ctx, span := telemetry.Start(cfg.Ctx, cfg.TracerProvider, metrics.EngineDijkstra, "Nearest")
	r := newRunner[W, N](cfg)
	r.init(start)
	n, ok, err := r.process(ctx, pred)
	r.finish(span, ok, err)
	if err != nil || !ok {
		return zeroN, zeroW, false, err
	}

	return n, r.dist[n], true, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[W node.Weight, N node.Weighted[N, W]] struct {
	options  Options      // Configuration options (thresholds, telemetry, etc.).
	dist     map[N]W      // Maps node → current best distance from start.
	prev     map[N]N      // Maps node → predecessor on the shortest path.
	visited  map[N]bool   // Tracks if a node's distance is finalized.
	pq       nodePQ[N, W] // Min-heap of *nodeItem for lazy priority queue.
	expanded int          // Settled nodes whose edges were relaxed.
}

func newRunner[W node.Weight, N node.Weighted[N, W]](cfg Options) *runner[W, N] {
	r := &runner[W, N]{
		options: cfg,
		dist:    make(map[N]W),
		visited: make(map[N]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N)
	}

	return r
}

// init sets the start distance to zero and pushes it into the heap.
func (r *runner[W, N]) init(start N) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[N, W]{id: start, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the node
// with the minimum distance from the start and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
//   - pred is non-nil and the node just settled satisfies it.
//   - The context is done.
func (r *runner[W, N]) process(ctx context.Context, pred node.Predicate[N]) (N, bool, error) {
	var zero N
	var u N
	var d W
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return zero, false, err
		}

		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem[N, W])
		u = item.id
		d = item.dist

		// 2) If this node was already visited (finalized), skip stale heap entry.
		if r.visited[u] {
			continue
		}

		// 3) If this distance exceeds MaxDistance, stop exploring any further nodes.
		if uint64(d) > r.options.MaxDistance {
			break
		}

		// 4) Mark u as visited. Its shortest distance d is now final.
		r.visited[u] = true
		if pred != nil && pred(u) {
			return u, true, nil
		}

		// 5) Relax all outgoing edges from u.
		r.relax(u, d)
	}

	return zero, false, nil
}

// relax examines each edge outgoing from u and attempts to improve distances to its neighbors.
// It ignores any edge weight ≥ InfEdgeThreshold (treating them as impassable).
// If a shorter path to neighbor v is found, we update dist[v], prev[v], and push a new heap entry.
func (r *runner[W, N]) relax(u N, du W) {
	r.expanded++
	var newDist W
	for w, v := range u.WeightedOutgoing() {
		if uint64(w) >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = du + w
		if uint64(newDist) > r.options.MaxDistance {
			continue
		}

		// Strictly better only; equal distances would just add duplicates.
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		// Lazy decrease-key: the outdated entry stays and is skipped when popped.
		heap.Push(&r.pq, &nodeItem[N, W]{id: v, dist: newDist})
	}
}

// finish closes the span and reports counters and the debug record.
func (r *runner[W, N]) finish(span trace.Span, found bool, err error) {
	telemetry.Finish(span, found, err,
		attribute.Int("expanded", r.expanded),
		attribute.Int("settled", len(r.visited)),
	)
	r.options.Metrics.Expanded(metrics.EngineDijkstra, r.expanded)
	r.options.Metrics.Searched(metrics.EngineDijkstra, found, err)
	telemetry.Logger(r.options.Logger).WithFields(logrus.Fields{
		"engine":   metrics.EngineDijkstra,
		"expanded": r.expanded,
		"settled":  len(r.visited),
		"found":    found,
	}).Debug("dijkstra: run finished")
}

// nodeItem represents a node and its current distance from the start.
type nodeItem[N any, W node.Weight] struct {
	id   N // node
	dist W // distance from start
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
type nodePQ[N any, W node.Weight] []*nodeItem[N, W]

// Len returns the number of items in the heap.
func (pq nodePQ[N, W]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[N, W]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[N, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ[N, W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N, W])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[N, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
