package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netcentrality_runs_total",
			Help: "Total number of analysis runs",
		},
		[]string{"status"},
	)

	r.StageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netcentrality_stage_duration_seconds",
			Help:    "Duration of each analysis stage in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0, 600.0},
		},
		[]string{"stage"},
	)

	r.SourcesProcessed = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netcentrality_bfs_sources_total",
			Help: "Number of BFS sources processed per computation",
		},
		[]string{"computation"},
	)

	r.PathOverflows = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netcentrality_path_total_overflows_total",
			Help: "Number of runs whose integer path totals saturated",
		},
	)

	r.Workers = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netcentrality_workers",
			Help: "Worker count used by the most recent run",
		},
	)
}
