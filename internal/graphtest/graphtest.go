// Package graphtest builds small explicit graphs exposed through the node
// contracts, for engine tests and benchmarks.
//
// Vertices are the integers [0, n). A Vertex value carries its ID and a
// pointer to the owning Graph, so equality is ID equality within a graph.
// Every call to Outgoing or WeightedOutgoing is counted per vertex.
package graphtest

import (
	"iter"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// Edge is a weighted arc to vertex To.
type Edge struct {
	To int
	W  uint32
}

// Graph is an adjacency list over [0, n).
type Graph struct {
	adj   [][]Edge
	calls []atomic.Int64
}

// New returns a graph with n isolated vertices.
func New(n int) *Graph {
	return &Graph{
		adj:   make([][]Edge, n),
		calls: make([]atomic.Int64, n),
	}
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.adj) }

// AddEdge adds the arc u→v with weight w. Parallel arcs are allowed.
func (g *Graph) AddEdge(u, v int, w uint32) *Graph {
	g.adj[u] = append(g.adj[u], Edge{To: v, W: w})

	return g
}

// V returns the vertex with the given id.
func (g *Graph) V(id int) Vertex { return Vertex{ID: id, g: g} }

// Calls returns how many times successors of id were generated.
func (g *Graph) Calls(id int) int64 { return g.calls[id].Load() }

// Vertex is a node of a Graph.
type Vertex struct {
	ID int
	g  *Graph
}

// Outgoing yields successors in insertion order.
func (v Vertex) Outgoing() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		v.g.calls[v.ID].Add(1)
		for _, e := range v.g.adj[v.ID] {
			if !yield(Vertex{ID: e.To, g: v.g}) {
				return
			}
		}
	}
}

// WeightedOutgoing yields (weight, successor) pairs in insertion order.
func (v Vertex) WeightedOutgoing() iter.Seq2[uint32, Vertex] {
	return func(yield func(uint32, Vertex) bool) {
		v.g.calls[v.ID].Add(1)
		for _, e := range v.g.adj[v.ID] {
			if !yield(e.W, Vertex{ID: e.To, g: v.g}) {
				return
			}
		}
	}
}

// Value returns the vertex id.
func (v Vertex) Value() int { return v.ID }

// Is returns a predicate matching the given id.
func Is(id int) func(Vertex) bool {
	return func(v Vertex) bool { return v.ID == id }
}

// Never is a predicate that matches nothing.
func Never(Vertex) bool { return false }

// Chain returns 0→1→…→n-1 with unit weights.
func Chain(n int) *Graph {
	g := New(n)
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1, 1)
	}

	return g
}

// Diamond IDs.
const (
	A = iota
	B
	C
	D
)

// Diamond returns A→B:1, A→C:4, B→D:1, C→D:1.
func Diamond() *Graph {
	return New(4).AddEdge(A, B, 1).AddEdge(A, C, 4).AddEdge(B, D, 1).AddEdge(C, D, 1)
}

// Random returns a graph with n vertices and m random arcs with weights in
// [0, maxW]. The same seed always yields the same graph.
func Random(seed uint64, n, m int, maxW uint32) *Graph {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g := New(n)
	for i := 0; i < m; i++ {
		g.AddEdge(r.IntN(n), r.IntN(n), uint32(r.IntN(int(maxW)+1)))
	}

	return g
}

// Reachable returns the set of ids reachable from start, start included.
func (g *Graph) Reachable(start int) map[int]bool {
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.adj[u] {
			if !seen[e.To] {
				seen[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}

	return seen
}

// ExpansionCounter counts hook invocations per vertex; safe for
// concurrent use.
type ExpansionCounter struct {
	mu     sync.Mutex
	counts map[int]int
}

// NewExpansionCounter returns an empty counter.
func NewExpansionCounter() *ExpansionCounter {
	return &ExpansionCounter{counts: make(map[int]int)}
}

// Hook records one expansion of v.
func (c *ExpansionCounter) Hook(v Vertex) {
	c.mu.Lock()
	c.counts[v.ID]++
	c.mu.Unlock()
}

// Counts returns a copy of the per-vertex counts.
func (c *ExpansionCounter) Counts() map[int]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}

	return out
}

// CounterValue sums the samples of the counter family name whose labels
// include all of want.
func CounterValue(t testing.TB, reg *prometheus.Registry, name string, want map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var sum float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			got := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			match := true
			for k, v := range want {
				if got[k] != v {
					match = false
					break
				}
			}
			if match {
				sum += m.GetCounter().GetValue()
			}
		}
	}

	return sum
}

// Tracing returns a tracer provider whose finished spans land in the
// returned recorder.
func Tracing() (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()

	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)), rec
}
