package conftypes

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{name: "string", value: "hello", want: KindString},
		{name: "empty string", value: "", want: KindString},
		{name: "float", value: 3.14, want: KindNumber},
		{name: "int", value: 42, want: KindNumber},
		{name: "zero", value: 0.0, want: KindNumber},
		{name: "bool true", value: true, want: KindBoolean},
		{name: "bool false", value: false, want: KindBoolean},
		{name: "array", value: []any{1.0, 2.0}, want: KindArray},
		{name: "empty array", value: []any{}, want: KindArray},
		{name: "object", value: map[string]any{"a": 1.0}, want: KindObject},
		{name: "nil", value: nil, want: KindNull},
		{name: "numeric string stays string", value: "80", want: KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.value); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
