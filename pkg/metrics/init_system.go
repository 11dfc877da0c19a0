package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSystemMetrics() {
	r.GoRoutines = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netcentrality_goroutines",
			Help: "Number of goroutines at the end of the last run",
		},
	)

	r.MemoryAllocBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netcentrality_memory_alloc_bytes",
			Help: "Bytes of allocated heap objects at the end of the last run",
		},
	)

	r.MemorySysBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netcentrality_memory_sys_bytes",
			Help: "Bytes of memory obtained from the OS at the end of the last run",
		},
	)
}
