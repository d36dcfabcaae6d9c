package schema

import (
	"reflect"
	"testing"
)

func TestEvaluateNotEmpty(t *testing.T) {
	rule := FieldRule{NotEmpty: true, Constraint: StringRule{MinLength: iptr(5)}}

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{name: "nil is empty", value: nil, want: []string{"must not be empty"}},
		{name: "blank string is empty", value: "   ", want: []string{"must not be empty"}},
		{name: "empty array is empty", value: []any{}, want: []string{"must not be empty"}},
		{name: "valid value passes", value: "hello", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.value, rule); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestEvaluateEmptyStopsConstraintChecks(t *testing.T) {
	rule := FieldRule{NotEmpty: true, Constraint: StringRule{MinLength: iptr(100)}}
	got := Evaluate("", rule)
	if len(got) != 1 || got[0] != "must not be empty" {
		t.Errorf("Evaluate(\"\") = %v, want only the emptiness violation", got)
	}
}

func TestEvaluateTypeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		value any
		rule  FieldRule
		want  []string
	}{
		{
			name:  "string where number declared",
			value: "8080",
			rule:  FieldRule{Constraint: NumberRule{Min: fptr(1)}},
			want:  []string{"must be of type number (got string)"},
		},
		{
			name:  "number where string declared",
			value: 42.0,
			rule:  FieldRule{Constraint: StringRule{MinLength: iptr(1)}},
			want:  []string{"must be of type string (got number)"},
		},
		{
			name:  "null where boolean declared",
			value: nil,
			rule:  FieldRule{Constraint: BoolRule{}},
			want:  []string{"must be of type boolean (got null)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.value, tt.rule)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestEvaluateMismatchSuppressesConstraints(t *testing.T) {
	// The min-length constraint must not run against a number.
	rule := FieldRule{Constraint: StringRule{MinLength: iptr(100)}}
	got := Evaluate(42.0, rule)
	if len(got) != 1 {
		t.Fatalf("Evaluate(42.0) = %v, want exactly the type violation", got)
	}
}

func TestEvaluateLooseRuleSkipsOtherKinds(t *testing.T) {
	rule := FieldRule{Constraint: StringRule{MinLength: iptr(5)}, loose: true}

	if got := Evaluate(42.0, rule); got != nil {
		t.Errorf("loose rule on number = %v, want no violations", got)
	}
	if got := Evaluate("ab", rule); len(got) != 1 {
		t.Errorf("loose rule on matching kind = %v, want the length violation", got)
	}
}

func TestEvaluateAccumulatesIndependentViolations(t *testing.T) {
	rule := FieldRule{Constraint: StringRule{
		MinLength: iptr(10),
		Pattern:   `^[a-z]+$`,
	}}
	got := Evaluate("ABC", rule)
	if len(got) != 2 {
		t.Fatalf("Evaluate(\"ABC\") = %v, want two violations", got)
	}
}

func TestEvaluateNoConstraint(t *testing.T) {
	if got := Evaluate("anything", FieldRule{}); got != nil {
		t.Errorf("Evaluate with empty rule = %v, want nil", got)
	}
}

func TestStringRuleConstraints(t *testing.T) {
	tests := []struct {
		name  string
		rule  StringRule
		value string
		want  int
	}{
		{name: "min length ok", rule: StringRule{MinLength: iptr(3)}, value: "abc", want: 0},
		{name: "min length short", rule: StringRule{MinLength: iptr(4)}, value: "abc", want: 1},
		{name: "min length counts runes", rule: StringRule{MinLength: iptr(3)}, value: "héé", want: 0},
		{name: "max length ok", rule: StringRule{MaxLength: iptr(3)}, value: "abc", want: 0},
		{name: "max length long", rule: StringRule{MaxLength: iptr(2)}, value: "abc", want: 1},
		{name: "no trimming before measuring", rule: StringRule{MinLength: iptr(3)}, value: " a ", want: 0},
		{name: "pattern match", rule: StringRule{Pattern: `^\d+$`}, value: "123", want: 0},
		{name: "pattern mismatch", rule: StringRule{Pattern: `^\d+$`}, value: "12a", want: 1},
		{name: "enum member", rule: StringRule{Enum: []string{"a", "b"}}, value: "b", want: 0},
		{name: "enum outsider", rule: StringRule{Enum: []string{"a", "b"}}, value: "c", want: 1},
		{name: "enum is case sensitive", rule: StringRule{Enum: []string{"prod"}}, value: "PROD", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Check(tt.value); len(got) != tt.want {
				t.Errorf("Check(%q) = %v, want %d violation(s)", tt.value, got, tt.want)
			}
		})
	}
}

func TestNumberRuleConstraints(t *testing.T) {
	tests := []struct {
		name  string
		rule  NumberRule
		value float64
		want  int
	}{
		{name: "within bounds", rule: NumberRule{Min: fptr(1), Max: fptr(10)}, value: 5, want: 0},
		{name: "at min", rule: NumberRule{Min: fptr(1)}, value: 1, want: 0},
		{name: "below min", rule: NumberRule{Min: fptr(1)}, value: 0, want: 1},
		{name: "at max", rule: NumberRule{Max: fptr(10)}, value: 10, want: 0},
		{name: "above max", rule: NumberRule{Max: fptr(10)}, value: 11, want: 1},
		{name: "enum member", rule: NumberRule{Enum: []float64{80, 443}}, value: 443, want: 0},
		{name: "enum outsider", rule: NumberRule{Enum: []float64{80, 443}}, value: 8080, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Check(tt.value); len(got) != tt.want {
				t.Errorf("Check(%v) = %v, want %d violation(s)", tt.value, got, tt.want)
			}
		})
	}
}

func TestBoolRuleConstraints(t *testing.T) {
	rule := BoolRule{Enum: []bool{false}}
	if got := rule.Check(false); len(got) != 0 {
		t.Errorf("Check(false) = %v, want no violations", got)
	}
	if got := rule.Check(true); len(got) != 1 {
		t.Errorf("Check(true) = %v, want one violation", got)
	}
}
