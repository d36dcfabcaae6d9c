package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads settings from a YAML file at the specified path.
// It applies default values, validates the settings, and returns any errors.
// When explicit is false the path came from DefaultSettingsPath rather than
// a flag, and a missing file simply yields the defaults. The settings are
// not modified by environment variables; use LoadWithEnvOverrides for that
// functionality.
func Load(path string, explicit bool) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			s := &Settings{}
			ApplyDefaults(s)
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %q: %w", path, err)
	}

	ApplyDefaults(&s)

	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return &s, nil
}

// LoadWithEnvOverrides loads settings from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention CONFVET_SECTION_FIELD (e.g., CONFVET_OUTPUT_FORMAT).
// Environment variables always take precedence over file-based settings.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final settings
func LoadWithEnvOverrides(path string, explicit bool) (*Settings, error) {
	s, err := Load(path, explicit)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(s)

	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("settings validation failed after environment overrides: %w", err)
	}

	return s, nil
}

// applyEnvOverrides applies environment variable overrides to the settings.
// Environment variables use the format CONFVET_SECTION_FIELD.
func applyEnvOverrides(s *Settings) {
	// Output overrides
	if val := os.Getenv("CONFVET_OUTPUT_FORMAT"); val != "" {
		s.Output.Format = val
	}
	if val := os.Getenv("CONFVET_STRICT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			s.Strict = b
		}
	}

	// Logging overrides
	if val := os.Getenv("CONFVET_LOG_LEVEL"); val != "" {
		s.Logging.Level = val
	}
	if val := os.Getenv("CONFVET_LOG_FORMAT"); val != "" {
		s.Logging.Format = val
	}
	if val := os.Getenv("CONFVET_LOG_REDACT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			s.Logging.Redact = &b
		}
	}

	// Schema overrides
	if val := os.Getenv("CONFVET_SCHEMAS_DIR"); val != "" {
		s.Schemas.Dir = val
	}

	// Watch overrides
	if val := os.Getenv("CONFVET_WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			s.Watch.Debounce = d
		}
	}
	if val := os.Getenv("CONFVET_WATCH_RESCAN_SCHEDULE"); val != "" {
		s.Watch.RescanSchedule = val
	}
	if val := os.Getenv("CONFVET_WATCH_METRICS_ADDRESS"); val != "" {
		s.Watch.MetricsAddress = val
	}
}
