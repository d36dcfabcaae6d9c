package schema

import (
	"fmt"
	"sort"

	"confvet-hq/confvet/pkg/verdict"
)

// Rule identifiers attached to schema-conformance issues.
const (
	RuleMissingRequiredKey = "missing-required-key"
	RuleUnexpectedKey      = "unexpected-key"
	RuleValidationError    = "validation-error"
)

// Check validates a whole configuration against a schema and returns the
// conformance issues in a deterministic order.
//
// Missing required keys come first, in the schema's declared order. Present
// keys are then visited in sorted order: a key outside a closed recognized
// set yields an unexpected-key warning, and a key with a field rule yields
// one validation-error per violated constraint. Rules attached to keys that
// are absent from the configuration never run. A nil schema produces no
// issues.
func Check(config map[string]any, s *Schema) []verdict.Issue {
	issues := make([]verdict.Issue, 0)
	if s == nil {
		return issues
	}

	for _, key := range s.Required {
		if _, present := config[key]; !present {
			issues = append(issues, verdict.Issue{
				Key:      key,
				Severity: verdict.SeverityError,
				Message:  fmt.Sprintf("required key %q is missing", key),
				Rule:     RuleMissingRequiredKey,
			})
		}
	}

	recognized := s.recognized()
	for _, key := range sortedKeys(config) {
		if recognized != nil {
			if _, known := recognized[key]; !known {
				issues = append(issues, verdict.Issue{
					Key:      key,
					Severity: verdict.SeverityWarning,
					Message:  fmt.Sprintf("key %q is not declared in the schema", key),
					Rule:     RuleUnexpectedKey,
				})
			}
		}
		rule, ok := s.Rules[key]
		if !ok {
			continue
		}
		for _, violation := range Evaluate(config[key], rule) {
			issues = append(issues, verdict.Issue{
				Key:      key,
				Severity: verdict.SeverityError,
				Message:  fmt.Sprintf("%s %s", key, violation),
				Rule:     RuleValidationError,
			})
		}
	}
	return issues
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
