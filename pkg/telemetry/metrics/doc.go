// Package metrics provides Prometheus metrics collection for confvet's
// watch mode.
//
// # Overview
//
// The metrics package exposes counters, histograms, and gauges describing
// validation activity while confvet watches a directory: how many files were
// validated, with what outcomes, which rules fired, and when the last pass
// ran.
//
// # Metrics
//
//   - confvet_validations_total{format,result}: Validation count
//   - confvet_validation_duration_seconds{format}: Validation duration histogram
//   - confvet_issues_total{severity,rule}: Finding count by rule
//   - confvet_passes_total{trigger}: Revalidation passes by trigger
//   - confvet_pass_files: Files validated per pass
//   - confvet_last_pass_timestamp_seconds: Unix time of the last completed pass
//
// # Usage
//
//	// Create collector
//	collector := metrics.NewCollector(nil)
//
//	// Record a validation
//	collector.RecordValidation("json", metrics.ResultInvalid, 3*time.Millisecond)
//	collector.RecordIssue("ERROR", "hardcoded-secret")
//
//	// Record a completed pass
//	collector.RecordPass(metrics.TriggerFSEvent, 4)
//
//	// Expose the endpoint
//	http.Handle("/metrics", collector.Handler())
//
// # Cardinality
//
// All label values come from small fixed sets: two source formats, two
// severities, ten rule identifiers, three triggers. No file paths or
// configuration values ever become labels.
package metrics
