package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ValidationMetrics tracks metrics for individual file validations.
//
// Metrics:
//   - confvet_validations_total: Validation count by source format and result
//   - confvet_validation_duration_seconds: Validation duration histogram
//   - confvet_issues_total: Finding count by severity and rule
type ValidationMetrics struct {
	// Total validation count
	validationsTotal *prometheus.CounterVec

	// Validation duration histogram
	duration *prometheus.HistogramVec

	// Finding counts
	issuesTotal *prometheus.CounterVec
}

// NewValidationMetrics creates and registers validation metrics with the
// provided registry.
func NewValidationMetrics(registry *prometheus.Registry) *ValidationMetrics {
	vm := &ValidationMetrics{
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "validations_total",
				Help:      "Total number of configuration file validations",
			},
			[]string{"format", "result"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of configuration file validations in seconds",
				// Local file validation runs sub-millisecond to around a second
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"format"},
		),

		issuesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "issues_total",
				Help:      "Total number of findings by severity and rule",
			},
			[]string{"severity", "rule"},
		),
	}

	registry.MustRegister(
		vm.validationsTotal,
		vm.duration,
		vm.issuesTotal,
	)

	return vm
}

// RecordValidation records a completed validation.
//
// Parameters:
//   - format: source format ("json", "env")
//   - result: "valid", "invalid", or "error"
//   - duration: validation duration
func (vm *ValidationMetrics) RecordValidation(format, result string, duration time.Duration) {
	vm.validationsTotal.WithLabelValues(format, result).Inc()
	vm.duration.WithLabelValues(format).Observe(duration.Seconds())
}

// RecordIssue records a single finding.
//
// Parameters:
//   - severity: "ERROR" or "WARNING"
//   - rule: rule identifier
func (vm *ValidationMetrics) RecordIssue(severity, rule string) {
	vm.issuesTotal.WithLabelValues(severity, rule).Inc()
}
