package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for an analysis process
type Registry struct {
	// Ingest Metrics
	EdgesIngested  prometheus.Counter
	MalformedLines prometheus.Counter
	IngestBytes    *prometheus.CounterVec

	// Graph Metrics
	GraphNodes       prometheus.Gauge
	GraphEdges       prometheus.Gauge
	GraphComponents  prometheus.Gauge
	SelfLoopsDropped prometheus.Counter
	DuplicateEdges   prometheus.Counter

	// Analysis Metrics
	RunsTotal        *prometheus.CounterVec
	StageDuration    *prometheus.HistogramVec
	SourcesProcessed *prometheus.CounterVec
	PathOverflows    prometheus.Counter
	Workers          prometheus.Gauge

	// System Metrics
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initIngestMetrics()
	r.initGraphMetrics()
	r.initAnalysisMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
