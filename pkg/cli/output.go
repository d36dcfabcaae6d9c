package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat selects how a command renders its result.
type OutputFormat string

const (
	// FormatText is the human-readable default.
	FormatText OutputFormat = "text"
	// FormatJSON is indented JSON for CI consumers.
	FormatJSON OutputFormat = "json"
	// FormatGrouped is text grouped by severity and rule. Only check
	// runs render it; commands without a grouped form fall back to text.
	FormatGrouped OutputFormat = "grouped"
)

// ParseFormat validates a --format flag or settings value.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatText, FormatJSON, FormatGrouped:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected text, json, or grouped)", s)
}

// Formatter renders one command's output rows.
type Formatter interface {
	FormatTo(w io.Writer, data any) error
}

// TextFormatter prints the value with fmt. Commands with structured
// text output render it themselves; this is the fallback shape.
type TextFormatter struct{}

// FormatTo writes data to w as plain text.
func (f *TextFormatter) FormatTo(w io.Writer, data any) error {
	_, err := fmt.Fprintf(w, "%v\n", data)
	return err
}

// JSONFormatter renders indented JSON, the machine-readable form the
// listing commands share.
type JSONFormatter struct{}

// FormatTo writes data to w as indented JSON.
func (f *JSONFormatter) FormatTo(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// NewFormatter returns the formatter for a format. Grouped output has
// no generic renderer, so it maps to text here.
func NewFormatter(format OutputFormat) Formatter {
	if format == FormatJSON {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}
