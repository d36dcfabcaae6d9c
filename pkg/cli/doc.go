/*
Package cli provides command-line interface utilities for confvet.

The cli package includes output formatters, the exit-code contract, and
common CLI helpers used by the confvet command.

Exit Codes:

Commands return errors; the main function maps them to exit codes with
ExitCode. A FindingsError means validation completed and found blocking
issues (exit 1); any other error means the tool itself failed (exit 2):

	err := rootCmd.Execute()
	os.Exit(cli.ExitCode(err))

Output Formatting:

The cli package supports text and JSON output for displaying command
results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	data := MyCommandResult{...}
	if err := formatter.FormatTo(os.Stdout, data); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
