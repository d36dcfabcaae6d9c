package config

import "time"

// Default values for settings fields.
const (
	// Output defaults
	DefaultOutputFormat = "text"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// Watch defaults
	DefaultWatchDebounce = 250 * time.Millisecond

	// DefaultSettingsPath is where Load looks when no --config flag is
	// given. A missing file at this path is not an error.
	DefaultSettingsPath = ".confvet.yaml"
)

// ApplyDefaults applies default values to a Settings struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(s *Settings) {
	if s.Output.Format == "" {
		s.Output.Format = DefaultOutputFormat
	}

	if s.Logging.Level == "" {
		s.Logging.Level = DefaultLogLevel
	}
	if s.Logging.Format == "" {
		s.Logging.Format = DefaultLogFormat
	}

	if s.Watch.Debounce == 0 {
		s.Watch.Debounce = DefaultWatchDebounce
	}

	// Strict, Schemas.Dir, Watch.RescanSchedule, and Watch.MetricsAddress
	// default to their zero values. Logging.Redact stays nil so
	// RedactEnabled can tell "unset" from "explicitly false".
}
