package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// FieldError represents a validation error for a specific settings field.
type FieldError struct {
	// Field is the dotted path to the settings field (e.g., "output.format").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in the settings.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the settings.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "settings validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("settings validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("settings validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire settings struct and returns a ValidationError
// if any validation rules fail. It returns nil if the settings are valid.
// All validation errors are collected and returned together.
func Validate(s *Settings) error {
	var errs []FieldError

	errs = append(errs, validateOutput(&s.Output)...)
	errs = append(errs, validateLogging(&s.Logging)...)
	errs = append(errs, validateWatch(&s.Watch)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateOutput validates output settings.
func validateOutput(s *OutputSettings) []FieldError {
	var errs []FieldError

	validFormats := map[string]bool{"text": true, "json": true, "grouped": true}
	if s.Format == "" {
		errs = append(errs, FieldError{
			Field:   "output.format",
			Message: "output format is required",
		})
	} else if !validFormats[s.Format] {
		errs = append(errs, FieldError{
			Field:   "output.format",
			Message: fmt.Sprintf("invalid output format %q: must be 'text', 'json', or 'grouped'", s.Format),
		})
	}

	return errs
}

// validateLogging validates logging settings.
func validateLogging(s *LoggingSettings) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if s.Level == "" {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: "logging level is required",
		})
	} else if !validLevels[s.Level] {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", s.Level),
		})
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if s.Format == "" {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: "logging format is required",
		})
	} else if !validFormats[s.Format] {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'text' or 'json'", s.Format),
		})
	}

	return errs
}

// validateWatch validates watch settings. The rescan schedule is parsed by
// the watch scheduler itself, so only shape checks happen here.
func validateWatch(s *WatchSettings) []FieldError {
	var errs []FieldError

	if s.Debounce < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}
	if s.Debounce > time.Minute {
		errs = append(errs, FieldError{
			Field:   "watch.debounce",
			Message: "debounce exceeds reasonable limit (1m)",
		})
	}

	if s.MetricsAddress != "" {
		if _, _, err := net.SplitHostPort(s.MetricsAddress); err != nil {
			errs = append(errs, FieldError{
				Field:   "watch.metrics_address",
				Message: fmt.Sprintf("invalid listen address %q: expected host:port", s.MetricsAddress),
			})
		}
	}

	return errs
}
