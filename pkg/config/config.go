package config

import "time"

// Settings is the root configuration structure for the confvet tool itself,
// loaded from .confvet.yaml. It controls how the tool reports, logs, and
// watches; it has nothing to do with the configurations being validated.
type Settings struct {
	// Output controls how validation results are rendered.
	Output OutputSettings `yaml:"output"`

	// Strict treats warnings as blocking, the same as the --strict flag.
	Strict bool `yaml:"strict"`

	// Logging configures the tool's own structured logging.
	Logging LoggingSettings `yaml:"logging"`

	// Schemas points at user-defined schema documents registered at
	// startup alongside the built-ins.
	Schemas SchemaSettings `yaml:"schemas"`

	// Watch tunes watch mode: debouncing, periodic rescans, and the
	// metrics endpoint.
	Watch WatchSettings `yaml:"watch"`
}

// OutputSettings controls result rendering.
type OutputSettings struct {
	// Format is text, json, or grouped.
	Format string `yaml:"format"`
}

// LoggingSettings configures the tool's structured logging.
type LoggingSettings struct {
	// Level is debug, info, warn, or error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`

	// Redact masks secret-looking values in log output. Defaults to true
	// when unset.
	Redact *bool `yaml:"redact"`
}

// RedactEnabled reports whether log redaction is on. Unset means on.
func (l LoggingSettings) RedactEnabled() bool {
	return l.Redact == nil || *l.Redact
}

// SchemaSettings points at user-defined schema documents.
type SchemaSettings struct {
	// Dir is scanned for *.yaml, *.yml, and *.json schema files at
	// startup. Empty disables the scan.
	Dir string `yaml:"dir"`
}

// WatchSettings tunes watch mode.
type WatchSettings struct {
	// Debounce is how long to collapse bursts of file events into a
	// single revalidation pass.
	Debounce time.Duration `yaml:"debounce"`

	// RescanSchedule is a cron expression for periodic full revalidation
	// passes independent of file events. Empty disables them.
	RescanSchedule string `yaml:"rescan_schedule"`

	// MetricsAddress is the listen address for the Prometheus /metrics
	// endpoint during watch mode. Empty disables the endpoint.
	MetricsAddress string `yaml:"metrics_address"`
}
