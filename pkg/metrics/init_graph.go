package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netcentrality_graph_nodes",
			Help: "Number of nodes in the most recently built graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netcentrality_graph_edges",
			Help: "Number of distinct undirected edges in the most recently built graph",
		},
	)

	r.GraphComponents = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netcentrality_graph_components",
			Help: "Number of connected components in the most recently built graph",
		},
	)

	r.SelfLoopsDropped = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netcentrality_self_loops_dropped_total",
			Help: "Total number of self-loop edges discarded during graph construction",
		},
	)

	r.DuplicateEdges = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netcentrality_duplicate_edges_total",
			Help: "Total number of repeated edges collapsed during graph construction",
		},
	)
}
