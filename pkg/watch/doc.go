// Package watch provides continuous validation of configuration files.
//
// # Watch Sessions
//
// A watch session validates a file or directory once, then revalidates it
// whenever it changes on disk:
//
//   - Debounced file events (editors produce bursts of writes)
//   - Optional scheduled full rescans (cron expression)
//   - Optional HTTP listener with Prometheus metrics and health probes
//
// # Basic Usage
//
//	runner, err := watch.NewRunner(watch.RunnerConfig{
//	    Path:           "config/",
//	    Schema:         sch,
//	    Debounce:       250 * time.Millisecond,
//	    RescanSchedule: "*/15 * * * *", // Every 15 minutes
//	    MetricsAddress: "localhost:9090",
//	    Logger:         logger,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Blocks until the context is cancelled
//	if err := runner.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Each pass validates every configuration file under the path, logs the
// outcome per file, and records it in metrics. Watch mode does not render
// reports to stdout; the rendered formats belong to one-shot runs.
//
// # File Events
//
// The watcher reacts to writes, creates, renames, and removals of
// configuration files (*.json, *.env, .env, .env.*). Permission-only
// changes are ignored. When watching a single file, the watcher actually
// watches its parent directory, because most editors replace files by
// renaming a temporary copy over them and the watch on the old inode
// would otherwise be lost.
//
// Rapid event bursts collapse into a single revalidation after a quiet
// period (the debounce interval).
//
// # Scheduled Rescans
//
// A cron schedule adds periodic full passes independent of file events:
//
//   - "0 * * * *": Hourly on the hour
//   - "*/15 * * * *": Every 15 minutes
//   - "0 3 * * *": Daily at 3 AM
//
// An empty schedule disables rescans. The scheduler shuts down
// gracefully, waiting for a running pass to finish.
package watch
