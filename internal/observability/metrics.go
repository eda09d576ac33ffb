// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Simulation metrics
	ShoeRunsCompleted prometheus.Counter
	RoundsSimulated   prometheus.Counter
	BustsTotal        prometheus.Counter
	BatchesCompleted  *prometheus.CounterVec
	BatchDuration     prometheus.Histogram

	// API metrics
	HistoryOutcomesAppended prometheus.Counter
	LiveClients             prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "baccarat_lab"
	}

	return &Metrics{
		ShoeRunsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "shoe_runs_completed_total",
			Help:      "Total number of simulated shoes completed",
		}),
		RoundsSimulated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "rounds_simulated_total",
			Help:      "Total number of rounds played across all shoes",
		}),
		BustsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "busts_total",
			Help:      "Total number of shoes that ended in a bust",
		}),
		BatchesCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "batches_completed_total",
			Help:      "Total number of completed batches by staking policy",
		}, []string{"policy"}),
		BatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "batch_duration_seconds",
			Help:      "Wall-clock duration of batch runs",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		HistoryOutcomesAppended: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "history_outcomes_appended_total",
			Help:      "Total number of outcomes appended to the history store",
		}),
		LiveClients: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "live_clients",
			Help:      "Current number of connected live-feed websocket clients",
		}),
	}
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
