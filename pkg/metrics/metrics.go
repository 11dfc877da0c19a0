package metrics

import (
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used as the status label of RunsTotal
const (
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// RecordIngest records a completed read of one input source
func (r *Registry) RecordIngest(scheme string, edges, malformed int, bytes int64) {
	r.EdgesIngested.Add(float64(edges))
	r.MalformedLines.Add(float64(malformed))
	if bytes > 0 {
		r.IngestBytes.WithLabelValues(scheme).Add(float64(bytes))
	}
}

// RecordGraph records the shape of a freshly built graph
func (r *Registry) RecordGraph(nodes, edges, selfLoops, duplicates int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.SelfLoopsDropped.Add(float64(selfLoops))
	r.DuplicateEdges.Add(float64(duplicates))
}

// RecordComponents records the connected component count
func (r *Registry) RecordComponents(count int) {
	r.GraphComponents.Set(float64(count))
}

// RecordStage records the duration of one analysis stage
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordSources records how many BFS sources a computation processed
func (r *Registry) RecordSources(computation string, sources int) {
	r.SourcesProcessed.WithLabelValues(computation).Add(float64(sources))
}

// RecordPathOverflow notes a run whose path totals saturated
func (r *Registry) RecordPathOverflow() {
	r.PathOverflows.Inc()
}

// RecordRun records the outcome of an analysis run
func (r *Registry) RecordRun(status string, workers int) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.Workers.Set(float64(workers))
}

// UpdateRuntimeMetrics samples goroutine and memory statistics
func (r *Registry) UpdateRuntimeMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}

// WriteTextfile writes every metric in the Prometheus text format to path,
// for collection by the node exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
