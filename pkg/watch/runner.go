package watch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"confvet-hq/confvet/pkg/schema"
	"confvet-hq/confvet/pkg/source"
	"confvet-hq/confvet/pkg/telemetry/health"
	"confvet-hq/confvet/pkg/telemetry/logging"
	"confvet-hq/confvet/pkg/telemetry/metrics"
	"confvet-hq/confvet/pkg/validator"
)

// Runner owns a watch session: it performs the initial validation pass,
// revalidates on debounced file events and on the rescan schedule, and
// serves the metrics and health endpoints for the duration of the session.
//
// Watch mode reports through logs and metrics rather than stdout; the
// rendered report formats belong to one-shot check runs.
type Runner struct {
	path    string
	schema  *schema.Schema
	logger  *logging.Logger
	metrics *metrics.Collector

	debounce       time.Duration
	rescanSchedule string
	metricsAddress string
}

// RunnerConfig contains configuration for a watch session.
type RunnerConfig struct {
	// Path is the configuration file or directory to watch.
	Path string

	// Schema is the schema to check conformance against. Nil means
	// security rules only.
	Schema *schema.Schema

	// Debounce is how long to collapse bursts of file events.
	Debounce time.Duration

	// RescanSchedule is a cron expression for periodic full passes.
	// Empty disables them.
	RescanSchedule string

	// MetricsAddress is the listen address for the /metrics, /health
	// and /ready endpoints. Empty disables the listener.
	MetricsAddress string

	// Logger receives per-pass activity. Nil discards.
	Logger *logging.Logger

	// Metrics receives validation outcomes. Nil creates a private
	// collector.
	Metrics *metrics.Collector
}

// PassResult summarizes one validation pass over the watched path.
type PassResult struct {
	// RunID uniquely identifies the pass in logs.
	RunID string

	// Files is the number of configuration files validated.
	Files int

	// Errors and Warnings count findings across all files.
	Errors   int
	Warnings int

	// Failures counts files that could not be loaded at all.
	Failures int
}

// NewRunner creates a watch runner for the given configuration.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch path is required")
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, fmt.Errorf("cannot watch %q: %w", cfg.Path, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	collector := cfg.Metrics
	if collector == nil {
		collector = metrics.NewCollector(nil)
	}

	return &Runner{
		path:           cfg.Path,
		schema:         cfg.Schema,
		logger:         logger,
		metrics:        collector,
		debounce:       cfg.Debounce,
		rescanSchedule: cfg.RescanSchedule,
		metricsAddress: cfg.MetricsAddress,
	}, nil
}

// Run executes the watch session: an initial pass, then revalidation on
// file events and scheduled rescans. It blocks until the context is
// cancelled.
func (r *Runner) Run(ctx context.Context) error {
	if r.metricsAddress != "" {
		stopMetrics, err := r.serveMetrics()
		if err != nil {
			return err
		}
		defer stopMetrics()
	}

	r.RunPass(ctx, metrics.TriggerInitial)

	scheduler := NewScheduler(r.rescanSchedule, r.logger)
	if err := scheduler.Start(ctx, func(ctx context.Context) {
		r.RunPass(ctx, metrics.TriggerSchedule)
	}); err != nil {
		return err
	}
	defer scheduler.Stop()

	watcher, err := NewWatcher(&WatcherConfig{
		Path:             r.path,
		DebounceInterval: r.debounce,
	}, r.logger)
	if err != nil {
		return err
	}

	return watcher.Watch(ctx, func() error {
		r.RunPass(ctx, metrics.TriggerFSEvent)
		return nil
	})
}

// RunPass validates every configuration file under the watched path once,
// recording outcomes in logs and metrics.
func (r *Runner) RunPass(ctx context.Context, trigger string) PassResult {
	runID := uuid.NewString()
	log := r.logger.WithContext(logging.WithRunID(ctx, runID))

	result := PassResult{RunID: runID}

	paths, err := r.resolvePaths()
	if err != nil {
		log.Error("pass aborted", "trigger", trigger, "error", err)
		return result
	}

	for _, path := range paths {
		result.Files++

		start := time.Now()
		f, err := source.Load(path)
		if err != nil {
			result.Failures++
			r.metrics.RecordValidation(string(source.DetectFormat(path, nil)), metrics.ResultError, time.Since(start))
			log.Error("failed to load configuration", "file", path, "error", err)
			continue
		}

		res := validator.Validate(f.Values, r.schema)
		elapsed := time.Since(start)

		outcome := metrics.ResultValid
		if !res.IsValid {
			outcome = metrics.ResultInvalid
		}
		r.metrics.RecordValidation(string(f.Format), outcome, elapsed)
		for _, issue := range res.Issues {
			r.metrics.RecordIssue(string(issue.Severity), issue.Rule)
		}

		result.Errors += res.Summary.ErrorCount
		result.Warnings += res.Summary.WarningCount

		if res.IsValid {
			log.Info("validation passed",
				"file", path,
				"warnings", res.Summary.WarningCount,
			)
		} else {
			log.Warn("validation failed",
				"file", path,
				"errors", res.Summary.ErrorCount,
				"warnings", res.Summary.WarningCount,
			)
		}
	}

	r.metrics.RecordPass(trigger, result.Files)

	log.Info("pass complete",
		"trigger", trigger,
		"files", result.Files,
		"errors", result.Errors,
		"warnings", result.Warnings,
		"failures", result.Failures,
	)

	return result
}

// resolvePaths lists the files a pass should validate.
func (r *Runner) resolvePaths() ([]string, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return source.Discover(r.path)
	}
	return []string{r.path}, nil
}

// metricsMux builds the handler tree for the session's HTTP listener:
// the Prometheus endpoint plus liveness and readiness probes.
func (r *Runner) metricsMux() *http.ServeMux {
	checker := health.New(0)
	checker.Register("watch_path", func(ctx context.Context) error {
		_, err := os.Stat(r.path)
		return err
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", r.metrics.Handler())
	checker.Mount(mux)
	return mux
}

// serveMetrics starts the session's HTTP listener and returns a function
// that shuts it down.
func (r *Runner) serveMetrics() (func(), error) {
	server := &http.Server{
		Addr:              r.metricsAddress,
		Handler:           r.metricsMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("metrics endpoint listening", "address", r.metricsAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Give a bad listen address a moment to surface before watching starts.
	select {
	case err := <-errCh:
		return nil, fmt.Errorf("failed to serve metrics on %q: %w", r.metricsAddress, err)
	case <-time.After(50 * time.Millisecond):
	}

	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.logger.Error("metrics endpoint shutdown failed", "error", err)
		}
	}
	return stop, nil
}
