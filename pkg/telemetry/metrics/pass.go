package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PassMetrics tracks watch-mode revalidation passes.
//
// Metrics:
//   - confvet_passes_total: Pass count by trigger
//   - confvet_pass_files: Files validated per pass
//   - confvet_last_pass_timestamp_seconds: Unix time of the last completed pass
type PassMetrics struct {
	// Total pass count
	passesTotal *prometheus.CounterVec

	// Files per pass
	passFiles prometheus.Histogram

	// Timestamp of the last completed pass
	lastPassTimestamp prometheus.Gauge
}

// NewPassMetrics creates and registers pass metrics with the provided
// registry.
func NewPassMetrics(registry *prometheus.Registry) *PassMetrics {
	pm := &PassMetrics{
		passesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "passes_total",
				Help:      "Total number of revalidation passes by trigger",
			},
			[]string{"trigger"},
		),

		passFiles: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "pass_files",
				Help:      "Number of files validated per pass",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1 to 512
			},
		),

		lastPassTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "last_pass_timestamp_seconds",
				Help:      "Unix timestamp of the last completed revalidation pass",
			},
		),
	}

	registry.MustRegister(
		pm.passesTotal,
		pm.passFiles,
		pm.lastPassTimestamp,
	)

	return pm
}

// RecordPass records a completed revalidation pass.
//
// Parameters:
//   - trigger: what started the pass ("initial", "fsevent", "schedule")
//   - files: number of files validated
func (pm *PassMetrics) RecordPass(trigger string, files int) {
	pm.passesTotal.WithLabelValues(trigger).Inc()
	pm.passFiles.Observe(float64(files))
	pm.lastPassTimestamp.SetToCurrentTime()
}
