package schema

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"confvet-hq/confvet/pkg/conftypes"
)

// Schema declares the expected shape of one configuration: which keys must
// be present, which may be present, and the validation rule for each key.
//
// When Required and Optional are both empty the schema is open: every key
// is recognized and only field rules apply. Otherwise their union is the
// closed set of recognized keys, and any key outside it is unexpected.
type Schema struct {
	Name     string
	Required []string
	Optional []string
	Rules    map[string]FieldRule
}

// recognized returns the closed key set, or nil when the schema is open.
func (s *Schema) recognized() map[string]struct{} {
	if len(s.Required) == 0 && len(s.Optional) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(s.Required)+len(s.Optional))
	for _, k := range s.Required {
		set[k] = struct{}{}
	}
	for _, k := range s.Optional {
		set[k] = struct{}{}
	}
	return set
}

// FieldRule is the validation contract for a single key: an optional
// emptiness requirement plus an optional typed constraint set.
type FieldRule struct {
	// NotEmpty rejects null, blank strings, and empty containers.
	NotEmpty bool

	// Constraint holds the declared type and its constraints. Nil means
	// the rule declares no type and only NotEmpty applies.
	Constraint Constraint

	// loose marks a constraint inferred from an untyped rule declaration.
	// Its checks run only when the value already has the matching kind;
	// a kind mismatch is not itself a violation.
	loose bool
}

// Constraint is a typed constraint set attached to a FieldRule. Check is
// only ever invoked with a value whose kind matches Kind.
type Constraint interface {
	Kind() conftypes.Kind
	Check(v any) []string
}

// StringRule constrains string values. Lengths count runes, not bytes,
// and no trimming is applied before measuring.
type StringRule struct {
	MinLength *int
	MaxLength *int
	Pattern   string
	Enum      []string
}

func (r StringRule) Kind() conftypes.Kind { return conftypes.KindString }

func (r StringRule) Check(v any) []string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	var out []string
	length := utf8.RuneCountInString(s)
	if r.MinLength != nil && length < *r.MinLength {
		out = append(out, fmt.Sprintf("must be at least %d characters (got %d)", *r.MinLength, length))
	}
	if r.MaxLength != nil && length > *r.MaxLength {
		out = append(out, fmt.Sprintf("must be at most %d characters (got %d)", *r.MaxLength, length))
	}
	if r.Pattern != "" && !conftypes.MatchesPattern(s, r.Pattern) {
		out = append(out, fmt.Sprintf("must match pattern %q", r.Pattern))
	}
	if len(r.Enum) > 0 && !slices.Contains(r.Enum, s) {
		out = append(out, fmt.Sprintf("must be one of [%s]", strings.Join(r.Enum, ", ")))
	}
	return out
}

// NumberRule constrains numeric values. Both bounds are inclusive.
type NumberRule struct {
	Min  *float64
	Max  *float64
	Enum []float64
}

func (r NumberRule) Kind() conftypes.Kind { return conftypes.KindNumber }

func (r NumberRule) Check(v any) []string {
	n, ok := conftypes.AsNumber(v)
	if !ok {
		return nil
	}
	var out []string
	if r.Min != nil && !conftypes.InRange(n, *r.Min, math.Inf(1)) {
		out = append(out, fmt.Sprintf("must be at least %s (got %s)",
			conftypes.Stringify(*r.Min), conftypes.Stringify(n)))
	}
	if r.Max != nil && !conftypes.InRange(n, math.Inf(-1), *r.Max) {
		out = append(out, fmt.Sprintf("must be at most %s (got %s)",
			conftypes.Stringify(*r.Max), conftypes.Stringify(n)))
	}
	if len(r.Enum) > 0 && !slices.Contains(r.Enum, n) {
		vals := make([]string, len(r.Enum))
		for i, e := range r.Enum {
			vals[i] = conftypes.Stringify(e)
		}
		out = append(out, fmt.Sprintf("must be one of [%s]", strings.Join(vals, ", ")))
	}
	return out
}

// BoolRule constrains boolean values.
type BoolRule struct {
	Enum []bool
}

func (r BoolRule) Kind() conftypes.Kind { return conftypes.KindBoolean }

func (r BoolRule) Check(v any) []string {
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	if len(r.Enum) > 0 && !slices.Contains(r.Enum, b) {
		vals := make([]string, len(r.Enum))
		for i, e := range r.Enum {
			vals[i] = conftypes.Stringify(e)
		}
		return []string{fmt.Sprintf("must be one of [%s]", strings.Join(vals, ", "))}
	}
	return nil
}
