package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"confvet-hq/confvet/pkg/cli"
	"confvet-hq/confvet/pkg/telemetry/metrics"
	"confvet-hq/confvet/pkg/watch"
)

var watchFlags struct {
	file           string
	dir            string
	schemaName     string
	schemaFile     string
	debounce       time.Duration
	rescanSchedule string
	metricsAddress string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Revalidate configuration files as they change",
	Long: `Watch a configuration file or directory and revalidate on change.

An initial validation pass runs immediately; after that, file events
trigger debounced revalidation passes, and an optional cron schedule
adds periodic full rescans. Results go to the structured log and to the
optional metrics listener, which serves Prometheus /metrics alongside
/health and /ready probes. The session runs until SIGINT or SIGTERM.

Examples:
  # Watch a single file
  confvet watch --file .env --schema application

  # Watch a directory with a metrics endpoint
  confvet watch --dir deploy/ --metrics-addr 127.0.0.1:9471

  # Add an hourly full rescan
  confvet watch --dir deploy/ --rescan-schedule "0 * * * *"`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.file, "file", "f", "", "configuration file to watch")
	watchCmd.Flags().StringVarP(&watchFlags.dir, "dir", "d", "", "directory of configuration files to watch")
	watchCmd.Flags().StringVar(&watchFlags.schemaName, "schema", "", "schema name (see: confvet schemas)")
	watchCmd.Flags().StringVar(&watchFlags.schemaFile, "schema-file", "", "schema file, merged over --schema when both are given")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 0, "how long to collapse bursts of file events (default from settings)")
	watchCmd.Flags().StringVar(&watchFlags.rescanSchedule, "rescan-schedule", "", "cron expression for periodic full rescans")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddress, "metrics-addr", "", "listen address for the metrics and health endpoints")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchFlags.file == "" && watchFlags.dir == "" {
		return cli.NewConfigError("file", "either --file or --dir must be specified")
	}
	if watchFlags.file != "" && watchFlags.dir != "" {
		return cli.NewConfigError("file", "--file and --dir are mutually exclusive")
	}

	settings, logger, err := setupRuntime()
	if err != nil {
		return err
	}

	sch, schemaName, err := resolveSchema(watchFlags.schemaName, watchFlags.schemaFile, settings)
	if err != nil {
		return err
	}

	path := watchFlags.file
	if path == "" {
		path = watchFlags.dir
	}

	// Apply flag overrides
	debounce := settings.Watch.Debounce
	if watchFlags.debounce > 0 {
		debounce = watchFlags.debounce
	}
	rescanSchedule := settings.Watch.RescanSchedule
	if watchFlags.rescanSchedule != "" {
		rescanSchedule = watchFlags.rescanSchedule
	}
	metricsAddress := settings.Watch.MetricsAddress
	if watchFlags.metricsAddress != "" {
		metricsAddress = watchFlags.metricsAddress
	}

	runner, err := watch.NewRunner(watch.RunnerConfig{
		Path:           path,
		Schema:         sch,
		Debounce:       debounce,
		RescanSchedule: rescanSchedule,
		MetricsAddress: metricsAddress,
		Logger:         logger,
		Metrics:        metrics.NewCollector(nil),
	})
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	if schemaName != "" {
		fmt.Printf("Watching %s (schema %s)\n", path, schemaName)
	} else {
		fmt.Printf("Watching %s\n", path)
	}
	if metricsAddress != "" {
		fmt.Printf("✓ Metrics endpoint: http://%s/metrics\n", metricsAddress)
		fmt.Printf("✓ Health endpoints: http://%s/health, http://%s/ready\n", metricsAddress, metricsAddress)
	}
	fmt.Println("Press Ctrl+C to stop")

	ctx := cli.SetupSignalHandler()
	if err := runner.Run(ctx); err != nil {
		return cli.NewCommandError("watch", err)
	}

	fmt.Println("✓ Watch stopped")
	return nil
}
