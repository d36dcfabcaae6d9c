package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"confvet-hq/confvet/pkg/cli"
	"confvet-hq/confvet/pkg/config"
	"confvet-hq/confvet/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "confvet",
	Short: "Confvet - configuration validation and security linting",
	Long: `Confvet validates application configuration files against schemas
and a fixed battery of security lint rules.

It reads JSON and dotenv sources and reports schema conformance problems
(missing, unexpected, or badly typed keys) alongside security findings
(weak passwords, hardcoded secrets, unsafe ports, public bindings,
insecure protocols, debug mode in production).

Exit codes: 0 when the configuration is valid, 1 when validation found
blocking issues, 2 when the tool itself failed.

For more information, visit: https://github.com/confvet-hq/confvet`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps its error to the exit code
// contract: 0 valid, 1 findings, 2 tool failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultSettingsPath, "tool settings file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")

	// Disable default completion command (we'll add our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// setupRuntime loads the tool settings and builds the logger every command
// shares. A missing settings file at the default path yields pure
// defaults; a missing file at an explicit --config path is an error.
func setupRuntime() (*config.Settings, *logging.Logger, error) {
	explicit := cfgFile != config.DefaultSettingsPath
	settings, err := config.LoadWithEnvOverrides(cfgFile, explicit)
	if err != nil {
		return nil, nil, cli.NewConfigError("", fmt.Sprintf("failed to load settings: %v", err))
	}
	config.SetSettings(settings)

	level := settings.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:  level,
		Format: settings.Logging.Format,
		Redact: settings.Logging.RedactEnabled(),
	})
	if err != nil {
		return nil, nil, cli.NewConfigError("logging", err.Error())
	}

	return settings, logger, nil
}
