package validator

import (
	"confvet-hq/confvet/pkg/rules"
	"confvet-hq/confvet/pkg/schema"
	"confvet-hq/confvet/pkg/verdict"
)

// Validate checks a configuration against a schema and runs the security
// rule set, merging both into one result.
//
// Schema issues come first, then security issues; neither list is
// deduplicated or reordered, so the same key can appear several times. A
// nil schema skips conformance checking entirely and leaves only security
// findings. Repeated calls with the same inputs produce identical results.
func Validate(config map[string]any, s *schema.Schema) verdict.Result {
	issues := schema.Check(config, s)
	issues = append(issues, rules.Evaluate(config)...)
	return verdict.Build(issues)
}
