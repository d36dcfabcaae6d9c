package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace is the Prometheus namespace for all confvet metrics.
const Namespace = "confvet"

// Trigger labels for revalidation passes.
const (
	TriggerInitial  = "initial"
	TriggerFSEvent  = "fsevent"
	TriggerSchedule = "schedule"
)

// Result labels for validations.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Collector is the orchestrator for all Prometheus metrics exposed during
// watch mode. It manages metric registration and provides a unified
// interface for recording validation outcomes.
//
// Label values are drawn from small fixed sets (source formats, rule names,
// severities, triggers), so cardinality stays bounded by construction.
type Collector struct {
	registry *prometheus.Registry

	// Per-file validation metrics
	validationMetrics *ValidationMetrics

	// Watch pass metrics
	passMetrics *PassMetrics
}

// NewCollector creates a new metrics collector backed by the provided
// Prometheus registry. If registry is nil, a fresh registry is created.
//
// Example:
//
//	collector := metrics.NewCollector(nil)
//	http.Handle("/metrics", collector.Handler())
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{registry: registry}
	c.validationMetrics = NewValidationMetrics(registry)
	c.passMetrics = NewPassMetrics(registry)

	return c
}

// RecordValidation records the outcome of validating a single file.
//
// Parameters:
//   - format: source format ("json", "env")
//   - result: "valid", "invalid", or "error" for files that failed to load
//   - duration: how long the validation took
func (c *Collector) RecordValidation(format, result string, duration time.Duration) {
	c.validationMetrics.RecordValidation(format, result, duration)
}

// RecordIssue records a single finding by severity and rule.
//
// Parameters:
//   - severity: "ERROR" or "WARNING"
//   - rule: the rule identifier (e.g., "hardcoded-secret")
func (c *Collector) RecordIssue(severity, rule string) {
	c.validationMetrics.RecordIssue(severity, rule)
}

// RecordPass records a completed revalidation pass.
//
// Parameters:
//   - trigger: what started the pass ("initial", "fsevent", "schedule")
//   - files: number of files validated in the pass
func (c *Collector) RecordPass(trigger string, files int) {
	c.passMetrics.RecordPass(trigger, files)
}

// Registry returns the Prometheus registry used by this collector.
// This can be used to create an HTTP handler for the /metrics endpoint:
//
//	http.Handle("/metrics", promhttp.HandlerFor(
//		collector.Registry(),
//		promhttp.HandlerOpts{},
//	))
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
