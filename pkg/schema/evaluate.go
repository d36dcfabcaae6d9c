package schema

import (
	"fmt"

	"confvet-hq/confvet/pkg/conftypes"
)

// Evaluate applies a single field rule to a value and returns one message
// per violated constraint.
//
// NotEmpty is checked first, and an empty value stops evaluation. A
// declared type that does not match the value's kind produces a single
// wrong-type message and also stops evaluation, so typed constraints never
// run against a value of the wrong kind. The remaining constraints are
// independent: each failure contributes its own message.
func Evaluate(value any, rule FieldRule) []string {
	if rule.NotEmpty && conftypes.IsEmpty(value) {
		return []string{"must not be empty"}
	}
	c := rule.Constraint
	if c == nil {
		return nil
	}
	if kind := conftypes.Classify(value); kind != c.Kind() {
		if rule.loose {
			return nil
		}
		return []string{fmt.Sprintf("must be of type %s (got %s)", c.Kind(), kind)}
	}
	return c.Check(value)
}
