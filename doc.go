// Package nodify searches implicit graphs: graphs that are never stored,
// only described by a node type that can list its own successors.
//
// What is nodify?
//
//	A set of search engines over user-defined node types:
//		• dfs      – sequential depth-first reachability, the baseline
//		• pdfs     – parallel depth-first reachability over a worker pool
//		• delta    – parallel Delta-Stepping, nearest match by weighted distance
//		• dijkstra – heap-based shortest paths, the weighted baseline
//		• bfs      – level-order traversal and fewest-edges search
//
// A node is any comparable value with an Outgoing method (or
// WeightedOutgoing for the weighted engines). Successors are produced
// lazily on every call, so graphs may be huge or infinite; engines never
// need the whole graph up front.
//
// Packages:
//
//	node/      – node contracts, predicates, closure-backed adapters
//	store/     – concurrent visited set, distance table, bucket map
//	metrics/   – Prometheus counters shared by all engines
//	gridgraph/ – 2D grids as implicit graphs: islands, bridges, regions
//	examples/  – runnable programs
//	dfs/ pdfs/ delta/ dijkstra/ bfs/ – the engines
//
// Quick example:
//
//	type N int
//	func (n N) Outgoing() iter.Seq[N] {
//	    return func(yield func(N) bool) { yield(n + 1) }
//	}
//
//	found, err := pdfs.New(N(0), pdfs.WithWorkers(8)).
//	    Exists(func(n N) bool { return n == 1000 })
//
// Every engine accepts a context, a logrus logger, an OpenTelemetry tracer
// provider and a metrics collector through its functional options.
package nodify
