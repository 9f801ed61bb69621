package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	reloadClients  prometheus.Gauge
	schemaReloads  prometheus.Counter
}

// newMetrics registers the preview metrics with the given registry.
func newMetrics(registry prometheus.Registerer) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "domweave",
			Subsystem: "preview",
			Name:      "renders_total",
			Help:      "Total number of reference page renders by status",
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "domweave",
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Reference page render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "domweave",
			Subsystem: "preview",
			Name:      "reload_clients",
			Help:      "Number of connected live-reload clients",
		}),

		schemaReloads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "domweave",
			Subsystem: "preview",
			Name:      "schema_reloads_total",
			Help:      "Total number of schema reloads triggered by file changes",
		}),
	}
}
