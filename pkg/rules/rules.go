package rules

import (
	"fmt"
	"slices"
	"strings"

	"confvet-hq/confvet/pkg/conftypes"
	"confvet-hq/confvet/pkg/security"
	"confvet-hq/confvet/pkg/verdict"
)

// Rule is one security heuristic applied to a single key/value pair.
// Check receives the whole configuration for the rules that need
// surrounding context and reports a finding message when the rule fires.
type Rule struct {
	Name        string
	Severity    verdict.Severity
	Description string
	Check       func(key string, value any, config map[string]any) (string, bool)
}

// Default returns the rule table in evaluation order. The order is part of
// the tool's observable behavior: reordering it reorders issue lists.
func Default() []Rule {
	return []Rule{
		weakPassword,
		hardcodedSecret,
		unsafePort,
		publicBinding,
		insecureProtocol,
		debugInProduction,
		missingValue,
	}
}

var weakPassword = Rule{
	Name:        "weak-password",
	Severity:    verdict.SeverityWarning,
	Description: "flags secret-looking keys whose value is a weak password",
	Check: func(key string, value any, _ map[string]any) (string, bool) {
		if !security.LooksLikeSecretKey(key) {
			return "", false
		}
		if _, ok := value.(string); !ok {
			return "", false
		}
		weak, reason := security.PasswordStrength(value)
		if !weak {
			return "", false
		}
		return fmt.Sprintf("value of %q is a weak password: %s", key, reason), true
	},
}

// placeholderSentinels are literal values users leave in checked-in
// configurations on purpose. Comparison is exact and case-sensitive.
var placeholderSentinels = []string{"CHANGE_ME", "YOUR_KEY_HERE"}

var hardcodedSecret = Rule{
	Name:        "hardcoded-secret",
	Severity:    verdict.SeverityWarning,
	Description: "flags secret-looking keys whose value is a literal rather than a placeholder",
	Check: func(key string, value any, _ map[string]any) (string, bool) {
		if !security.LooksLikeSecretKey(key) {
			return "", false
		}
		s, ok := value.(string)
		if !ok || s == "" {
			return "", false
		}
		// $-prefixed values reference environment variables.
		if strings.HasPrefix(s, "$") {
			return "", false
		}
		if slices.Contains(placeholderSentinels, s) {
			return "", false
		}
		return fmt.Sprintf("%q appears to contain a hardcoded secret; use an environment variable reference instead", key), true
	},
}

var unsafePort = Rule{
	Name:        "unsafe-port",
	Severity:    verdict.SeverityError,
	Description: "flags port keys bound to the privileged range (1-1023)",
	Check: func(key string, value any, _ map[string]any) (string, bool) {
		if !strings.Contains(strings.ToLower(key), "port") {
			return "", false
		}
		n, ok := conftypes.AsNumber(value)
		if !ok {
			return "", false
		}
		if n <= 0 || n >= 1024 {
			return "", false
		}
		return fmt.Sprintf("%q is set to privileged port %s (ports below 1024 require elevated privileges)",
			key, conftypes.Stringify(value)), true
	},
}

var publicBinding = Rule{
	Name:        "public-binding",
	Severity:    verdict.SeverityWarning,
	Description: "flags host/bind keys that listen on all interfaces",
	Check: func(key string, value any, _ map[string]any) (string, bool) {
		lowered := strings.ToLower(key)
		if !strings.Contains(lowered, "host") && !strings.Contains(lowered, "bind") {
			return "", false
		}
		s, ok := value.(string)
		if !ok {
			return "", false
		}
		if s != "0.0.0.0" && s != "::" {
			return "", false
		}
		return fmt.Sprintf("%q binds to all interfaces (%s)", key, s), true
	},
}

var insecureProtocol = Rule{
	Name:        "insecure-protocol",
	Severity:    verdict.SeverityWarning,
	Description: "flags url/uri keys using unencrypted http",
	Check: func(key string, value any, _ map[string]any) (string, bool) {
		lowered := strings.ToLower(key)
		if !strings.Contains(lowered, "url") && !strings.Contains(lowered, "uri") {
			return "", false
		}
		s, ok := value.(string)
		if !ok {
			return "", false
		}
		if !strings.HasPrefix(s, "http://") {
			return "", false
		}
		// Local development traffic is exempt.
		if strings.Contains(s, "localhost") {
			return "", false
		}
		return fmt.Sprintf("%q uses unencrypted http:// (%s)", key, s), true
	},
}

// environmentKeys are probed in order; the first key present in the
// configuration decides the environment, whatever its value holds.
var environmentKeys = []string{"environment", "ENV", "NODE_ENV"}

func isProduction(config map[string]any) bool {
	for _, k := range environmentKeys {
		v, present := config[k]
		if !present {
			continue
		}
		s, _ := v.(string)
		lowered := strings.ToLower(s)
		return lowered == "production" || lowered == "prod"
	}
	return false
}

var debugInProduction = Rule{
	Name:        "debug-in-production",
	Severity:    verdict.SeverityError,
	Description: "flags debug mode enabled while the environment is production",
	Check: func(key string, value any, config map[string]any) (string, bool) {
		if !strings.EqualFold(key, "debug") {
			return "", false
		}
		enabled, ok := value.(bool)
		if !ok || !enabled {
			return "", false
		}
		if !isProduction(config) {
			return "", false
		}
		return "debug mode is enabled in a production environment", true
	},
}

var missingValue = Rule{
	Name:        "missing-value",
	Severity:    verdict.SeverityError,
	Description: "flags keys explicitly set to null",
	Check: func(key string, value any, _ map[string]any) (string, bool) {
		if value != nil {
			return "", false
		}
		return fmt.Sprintf("%q is set to null", key), true
	},
}
