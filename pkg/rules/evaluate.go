package rules

import (
	"sort"

	"confvet-hq/confvet/pkg/verdict"
)

// Evaluate runs the default rule table over every key of a configuration.
// Keys are visited in sorted order and the table is applied in order within
// each key, so repeated evaluations of the same configuration produce
// identical issue lists.
func Evaluate(config map[string]any) []verdict.Issue {
	return EvaluateWith(config, Default())
}

// EvaluateWith runs a specific rule table over a configuration.
func EvaluateWith(config map[string]any, table []Rule) []verdict.Issue {
	issues := make([]verdict.Issue, 0)

	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, rule := range table {
			msg, fired := rule.Check(key, config[key], config)
			if !fired {
				continue
			}
			issues = append(issues, verdict.Issue{
				Key:      key,
				Severity: rule.Severity,
				Message:  msg,
				Rule:     rule.Name,
			})
		}
	}
	return issues
}
