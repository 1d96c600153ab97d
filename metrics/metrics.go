// Package metrics exposes Prometheus collectors for graph searches.
//
// Collectors are registered on a caller-supplied registry (promauto.With)
// rather than the global default, so several Recorders can coexist in tests.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Recorder holds the collectors for one registry.
type Recorder struct {
	// 1. Searches (Counter), labeled by frontier and outcome.
	SearchesTotal *prometheus.CounterVec

	// 2. Search duration (Histogram).
	SearchDuration *prometheus.HistogramVec

	// 3. Nodes expanded per search (Histogram).
	ExpandedNodes prometheus.Histogram

	// 4. Nodes on each returned path (Histogram).
	PathNodes prometheus.Histogram

	// 5. Graph size per scenario (Gauges).
	GraphNodes *prometheus.GaugeVec
	GraphEdges *prometheus.GaugeVec
}

// New creates a Recorder and registers its collectors on reg.
// It panics if reg already holds collectors with the same names.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		SearchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathnet_searches_total",
				Help: "Total number of A* searches run",
			},
			[]string{"frontier", "outcome"},
		),
		SearchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "pathnet_search_duration_seconds",
				Help: "Duration of A* searches in seconds",
				// From a handful of nodes (microseconds) to large linear-frontier runs.
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
			},
			[]string{"frontier"},
		),
		ExpandedNodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathnet_search_expanded_nodes",
			Help:    "Nodes taken off the frontier per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		PathNodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathnet_path_nodes",
			Help:    "Nodes on each returned path",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		GraphNodes: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pathnet_graph_nodes",
				Help: "Active nodes in the scenario graph",
			},
			[]string{"scenario"},
		),
		GraphEdges: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pathnet_graph_edges",
				Help: "Active edges in the scenario graph",
			},
			[]string{"scenario"},
		),
	}
}

// ObserveSearch records one finished search. expanded and pathLen are
// ignored unless outcome is OutcomeFound or OutcomeNotFound.
func (r *Recorder) ObserveSearch(frontier, outcome string, d time.Duration, expanded, pathLen int) {
	if r == nil {
		return
	}
	r.SearchesTotal.WithLabelValues(frontier, outcome).Inc()
	r.SearchDuration.WithLabelValues(frontier).Observe(d.Seconds())
	switch outcome {
	case OutcomeFound:
		r.ExpandedNodes.Observe(float64(expanded))
		r.PathNodes.Observe(float64(pathLen))
	case OutcomeNotFound:
		r.ExpandedNodes.Observe(float64(expanded))
	}
}

// SetGraphSize records the size of a scenario graph.
func (r *Recorder) SetGraphSize(scenario string, nodes, edges int) {
	if r == nil {
		return
	}
	r.GraphNodes.WithLabelValues(scenario).Set(float64(nodes))
	r.GraphEdges.WithLabelValues(scenario).Set(float64(edges))
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
