package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RunIDKey is the context key for watch-mode run identifiers.
	RunIDKey contextKey = "run_id"

	// FileKey is the context key for the configuration file being validated.
	FileKey contextKey = "file"
)

// WithRunID adds a run identifier to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run identifier from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithFile adds the configuration file path to the context.
func WithFile(ctx context.Context, file string) context.Context {
	return context.WithValue(ctx, FileKey, file)
}

// GetFile retrieves the configuration file path from the context.
func GetFile(ctx context.Context) string {
	if file, ok := ctx.Value(FileKey).(string); ok {
		return file
	}
	return ""
}

// extractContextFields extracts common fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if runID := GetRunID(ctx); runID != "" {
		fields = append(fields, "run_id", runID)
	}

	if file := GetFile(ctx); file != "" {
		fields = append(fields, "file", file)
	}

	return fields
}

// WithContext creates a new logger carrying any run fields present in the
// context.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	args := extractContextFields(ctx)
	if len(args) == 0 {
		return l
	}
	return l.With(args...)
}
