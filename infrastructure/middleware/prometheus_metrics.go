// Package middleware provides cross-cutting concerns wrapped around the
// search engine's probe/update cycle: metrics and tracing.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-mcts/internal/domain"
)

// SearchMetrics records Prometheus counters, gauges, and histograms for
// one named search run.
type SearchMetrics struct {
	probesTotal      *prometheus.CounterVec
	treeSize         *prometheus.GaugeVec
	updateLatency    *prometheus.HistogramVec
	traceStepsLength *prometheus.HistogramVec
}

// NewSearchMetrics constructs and registers the metric vectors for a
// search run.
func NewSearchMetrics() *SearchMetrics {
	return &SearchMetrics{
		probesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mcts_probes_total",
				Help: "Total number of Tree.Probe calls, labeled by outcome.",
			},
			[]string{"search", "status"},
		),
		treeSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mcts_tree_size",
				Help: "Current number of distinct nodes in the search tree.",
			},
			[]string{"search"},
		),
		updateLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mcts_update_duration_seconds",
				Help:    "Latency of Tree.Update calls, including back-propagation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"search"},
		),
		traceStepsLength: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mcts_trace_steps",
				Help:    "Number of (node, key) steps recorded per probe.",
				Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
			},
			[]string{"search"},
		),
	}
}

// RecordProbe records one Probe outcome.
func (m *SearchMetrics) RecordProbe(search string, status domain.ProbeStatus, steps int) {
	m.probesTotal.WithLabelValues(search, status.String()).Inc()
	m.traceStepsLength.WithLabelValues(search).Observe(float64(steps))
}

// RecordUpdate records the latency of one Update call.
func (m *SearchMetrics) RecordUpdate(search string, elapsed time.Duration) {
	m.updateLatency.WithLabelValues(search).Observe(elapsed.Seconds())
}

// SetTreeSize reports the tree's current node count.
func (m *SearchMetrics) SetTreeSize(search string, size int) {
	m.treeSize.WithLabelValues(search).Set(float64(size))
}
