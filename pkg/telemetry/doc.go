// Package telemetry groups the observability subpackages used by
// validation runs and watch sessions.
//
// # Components
//
//   - logging: Structured slog-based logging with secret redaction
//   - metrics: Prometheus counters and histograms for validation outcomes
//   - health: Liveness and readiness probes for watch sessions
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Redact: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger.Info("validation passed", "file", "config.json", "warnings", 0)
//
//	collector := metrics.NewCollector(nil)
//	collector.RecordValidation("json", metrics.ResultValid, elapsed)
//
// One-shot check runs log to stderr and print reports to stdout; only
// watch sessions serve the metrics and health endpoints over HTTP.
//
// # Secret Redaction
//
// With redaction enabled, the logger masks values of secret-looking
// attribute keys (api_key, password, token and similar) before they
// reach the handler, so findings can reference offending keys without
// leaking their configured values into log output.
package telemetry
