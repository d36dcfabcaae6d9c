package cli

import (
	"errors"
	"fmt"
)

// Exit codes returned by the confvet binary. CI pipelines branch on these,
// so the mapping is part of the tool's contract.
const (
	// ExitOK: validation ran and found nothing blocking.
	ExitOK = 0
	// ExitFindings: validation ran to completion and found blocking
	// issues (errors, or warnings under --strict).
	ExitFindings = 1
	// ExitFailure: the tool itself failed before producing a verdict
	// (usage errors, unreadable files, bad settings).
	ExitFailure = 2
)

// ConfigError represents an invalid tool setting.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// FindingsError signals that validation completed and produced blocking
// findings. It separates "the configuration is bad" from "the tool broke"
// when the error is mapped to an exit code.
type FindingsError struct {
	Errors   int
	Warnings int
	Strict   bool
}

func (e *FindingsError) Error() string {
	if e.Strict && e.Errors == 0 {
		return fmt.Sprintf("validation failed: %d warning(s) (strict mode)", e.Warnings)
	}
	return fmt.Sprintf("validation failed: %d error(s), %d warning(s)", e.Errors, e.Warnings)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// ExitCode maps an error returned by a command to the binary's exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var findings *FindingsError
	if errors.As(err, &findings) {
		return ExitFindings
	}
	return ExitFailure
}
