// Package metrics exposes Prometheus counters describing engine activity.
//
// A *Collector is optional everywhere: engines accept a nil collector and
// every method on a nil *Collector is a no-op.
//
// Series (all under the "nodify" namespace):
//
//   - expansions_total{engine}        nodes whose successors were generated
//   - rounds_total{engine}            parallel rounds / bucket rounds executed
//   - relaxations_total{kind}         successful delta relaxations, light|heavy
//   - searches_total{engine,outcome}  queries by outcome, found|exhausted|failed
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Engine label values.
const (
	EngineDFS      = "dfs"
	EnginePDFS     = "pdfs"
	EngineDelta    = "delta"
	EngineDijkstra = "dijkstra"
	EngineBFS      = "bfs"
)

// Outcome label values.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeFailed    = "failed"
)

// Relaxation kinds.
const (
	KindLight = "light"
	KindHeavy = "heavy"
)

const namespace = "nodify"

// Collector groups the counters.
type Collector struct {
	expansions  *prometheus.CounterVec
	rounds      *prometheus.CounterVec
	relaxations *prometheus.CounterVec
	searches    *prometheus.CounterVec
}

// New creates the counters and registers them with reg. A nil reg skips
// registration, which is handy when the caller registers the collector
// itself (Collector implements prometheus.Collector).
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		expansions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansions_total",
			Help:      "Nodes whose outgoing edges were generated.",
		}, []string{"engine"}),
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Parallel batch rounds or bucket rounds executed.",
		}, []string{"engine"}),
		relaxations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Distance improvements applied, by edge class.",
		}, []string{"kind"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed queries by outcome.",
		}, []string{"engine", "outcome"}),
	}
	if reg != nil {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}

	return c, nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.expansions.Describe(ch)
	c.rounds.Describe(ch)
	c.relaxations.Describe(ch)
	c.searches.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.expansions.Collect(ch)
	c.rounds.Collect(ch)
	c.relaxations.Collect(ch)
	c.searches.Collect(ch)
}

// Expanded adds n expansions for engine.
func (c *Collector) Expanded(engine string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.expansions.WithLabelValues(engine).Add(float64(n))
}

// Round counts one round for engine.
func (c *Collector) Round(engine string) {
	if c == nil {
		return
	}
	c.rounds.WithLabelValues(engine).Inc()
}

// Relaxed adds n successful relaxations of the given kind.
func (c *Collector) Relaxed(kind string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.relaxations.WithLabelValues(kind).Add(float64(n))
}

// Searched counts a finished query of engine.
func (c *Collector) Searched(engine string, found bool, err error) {
	if c == nil {
		return
	}
	outcome := OutcomeExhausted
	switch {
	case err != nil:
		outcome = OutcomeFailed
	case found:
		outcome = OutcomeFound
	}
	c.searches.WithLabelValues(engine, outcome).Inc()
}
