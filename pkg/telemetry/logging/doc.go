// Package logging provides structured logging with secret redaction.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with text and JSON formats
//   - Automatic masking of secret-looking fields (passwords, tokens, keys)
//   - Context-aware logging with watch run IDs
//   - Configurable log levels (debug, info, warn, error)
//
// Log output goes to stderr by default so that validation reports on stdout
// stay machine-readable.
//
// # Usage
//
//	// Create a logger
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "text",
//	    Redact: true,
//	})
//
//	// Log structured data
//	logger.Info("validation complete",
//	    "file", "app.json",
//	    "api_key", "sk-abc123",  // Automatically masked
//	    "errors", 2,
//	)
//
//	// Create context-aware logger
//	ctx := logging.WithRunID(ctx, runID)
//	logger.WithContext(ctx).Info("rescan pass")  // Includes run_id automatically
//
// # Secret Redaction
//
// When Redact is enabled, values are masked whenever their key name looks
// like a credential (password, secret, token, api_key, and similar):
//
//   - db_password=hunter2-extra → db_password=hunt***
//   - api_key=sk-abc123xyz → api_key=sk-a***
//
// Values of four characters or fewer are masked entirely. Keys are matched
// with the same conventions the hardcoded-secret lint rule uses, so anything
// the validator would flag is also safe to log.
package logging
