package logging

import (
	"fmt"

	"confvet-hq/confvet/pkg/security"
)

// Redactor masks secret values in log fields so that validated configuration
// content never leaks credentials into the tool's own log output.
type Redactor struct {
	enabled bool
}

// NewRedactor creates a new Redactor.
func NewRedactor() *Redactor {
	return &Redactor{enabled: true}
}

// RedactArgs masks values whose keys look like credentials.
// Args are in the form: key1, value1, key2, value2, ...
func (r *Redactor) RedactArgs(args ...any) []any {
	if !r.enabled || len(args) == 0 {
		return args
	}

	redacted := make([]any, len(args))
	copy(redacted, args)

	for i := 1; i < len(redacted); i += 2 {
		key, ok := redacted[i-1].(string)
		if ok && security.LooksLikeSecretKey(key) {
			redacted[i] = r.redactValue(redacted[i])
		}
	}

	return redacted
}

// redactValue masks a sensitive value, keeping a short prefix for
// identification.
func (r *Redactor) redactValue(value any) any {
	switch v := value.(type) {
	case string:
		return Mask(v)
	case fmt.Stringer:
		return "***"
	default:
		return "***"
	}
}

// Mask redacts a secret string, keeping at most the first 4 characters.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "***"
	}
	return secret[:4] + "***"
}
