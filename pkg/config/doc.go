// Package config provides tool settings management for confvet.
//
// This package handles loading, validating, and managing the tool's own
// settings from a .confvet.yaml file with environment variable overrides.
// These settings control how confvet reports, logs, and watches; they are
// unrelated to the configuration files being validated.
//
// # Settings Loading
//
// Settings can be loaded in two ways:
//
//  1. From a YAML file only:
//     s, err := config.Load(".confvet.yaml", false)
//
//  2. From a YAML file with environment variable overrides:
//     s, err := config.LoadWithEnvOverrides(".confvet.yaml", false)
//
// The explicit argument records whether the path came from a flag. When it
// is false and the file does not exist, defaults are returned instead of
// an error, so running confvet in a directory without a settings file just
// works.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention CONFVET_SECTION_FIELD.
// For example:
//
//   - CONFVET_OUTPUT_FORMAT overrides output.format
//   - CONFVET_LOG_LEVEL overrides logging.level
//   - CONFVET_WATCH_DEBOUNCE overrides watch.debounce
//
// Environment variables always take precedence over file-based settings.
//
// # Settings Precedence
//
// Settings values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Command-line flags (applied by the CLI layer)
//
// # Singleton Pattern
//
// For tool-wide settings access, use the singleton pattern:
//
//	// At startup
//	if err := config.Initialize(config.DefaultSettingsPath, false); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anywhere in the tool
//	s := config.GetSettings()
//	fmt.Println(s.Output.Format)
//
// For testing, prefer dependency injection with explicit Settings instances
// rather than the global singleton.
//
// # Validation
//
// All settings are validated automatically during loading. Validation errors
// include field paths and helpful messages:
//
//	settings validation failed with 2 errors:
//	  - output.format: invalid output format "xml": must be 'text', 'json', or 'grouped'
//	  - logging.level: invalid logging level "verbose": must be 'debug', 'info', 'warn', or 'error'
//
// # Example Settings File
//
// Here is a complete settings file:
//
//	output:
//	  format: "text"
//
//	strict: false
//
//	logging:
//	  level: "info"
//	  format: "text"
//	  redact: true
//
//	schemas:
//	  dir: "./schemas"
//
//	watch:
//	  debounce: 250ms
//	  rescan_schedule: "0 * * * *"
//	  metrics_address: "127.0.0.1:9090"
//
// # Thread Safety
//
// All settings access is thread-safe. The singleton pattern uses read-write
// locks to allow concurrent reads while protecting against concurrent writes
// during reload operations.
package config
