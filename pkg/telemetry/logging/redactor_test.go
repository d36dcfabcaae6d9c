package logging

import (
	"testing"
)

func TestRedactor_RedactArgs(t *testing.T) {
	r := NewRedactor()

	tests := []struct {
		name string
		args []any
		want []any
	}{
		{
			name: "password value masked",
			args: []any{"db_password", "supersecretvalue"},
			want: []any{"db_password", "supe***"},
		},
		{
			name: "api key masked",
			args: []any{"api_key", "sk-proj-abc123"},
			want: []any{"api_key", "sk-p***"},
		},
		{
			name: "short secret fully masked",
			args: []any{"token", "abcd"},
			want: []any{"token", "***"},
		},
		{
			name: "plain keys untouched",
			args: []any{"host", "0.0.0.0", "port", 8080},
			want: []any{"host", "0.0.0.0", "port", 8080},
		},
		{
			name: "mixed pairs",
			args: []any{"file", "app.json", "jwt_secret", "deadbeefcafe"},
			want: []any{"file", "app.json", "jwt_secret", "dead***"},
		},
		{
			name: "non-string secret value masked",
			args: []any{"auth_token", 123456},
			want: []any{"auth_token", "***"},
		},
		{
			name: "empty args",
			args: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.RedactArgs(tt.args...)
			if len(got) != len(tt.want) {
				t.Fatalf("length mismatch: got %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("args[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRedactor_DoesNotMutateInput(t *testing.T) {
	r := NewRedactor()
	args := []any{"password", "original-value"}

	r.RedactArgs(args...)

	if args[1] != "original-value" {
		t.Error("RedactArgs mutated the input slice")
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{name: "empty", secret: "", want: ""},
		{name: "single char", secret: "a", want: "***"},
		{name: "exactly four", secret: "abcd", want: "***"},
		{name: "five chars keeps prefix", secret: "abcde", want: "abcd***"},
		{name: "long secret", secret: "sk-proj-1234567890", want: "sk-p***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mask(tt.secret); got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.secret, got, tt.want)
			}
		})
	}
}
