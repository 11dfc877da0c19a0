package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initIngestMetrics() {
	r.EdgesIngested = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netcentrality_edges_ingested_total",
			Help: "Total number of edge lines parsed from input sources",
		},
	)

	r.MalformedLines = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netcentrality_malformed_lines_total",
			Help: "Total number of input lines skipped in lenient mode",
		},
	)

	r.IngestBytes = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netcentrality_ingest_bytes_total",
			Help: "Bytes read from input sources",
		},
		[]string{"scheme"},
	)
}
