package security

import (
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest secret value the linter accepts.
const MinPasswordLength = 8

// Reasons reported by PasswordStrength for a weak candidate.
const (
	ReasonNotString = "not a string"
	ReasonTooShort  = "shorter than 8 characters"
	ReasonCommon    = "matches a common weak password"
)

// weakPasswords is the dictionary of rejected literals, compared
// case-insensitively. Entries shorter than MinPasswordLength are kept so
// the dictionary documents the full reject list even though the length
// check fires first for them.
var weakPasswords = []string{
	"password",
	"123456",
	"12345678",
	"123456789",
	"qwerty",
	"abc123",
	"password1",
	"password123",
	"admin",
	"letmein",
	"welcome",
	"iloveyou",
	"monkey",
	"dragon",
}

// WeakPasswords returns a copy of the weak-password dictionary.
func WeakPasswords() []string {
	out := make([]string, len(weakPasswords))
	copy(out, weakPasswords)
	return out
}

// PasswordStrength reports whether a candidate secret value is weak and,
// if so, which condition makes it weak. Checks run in a fixed order:
// non-strings are weak outright, then length, then the dictionary.
func PasswordStrength(candidate any) (weak bool, reason string) {
	s, ok := candidate.(string)
	if !ok {
		return true, ReasonNotString
	}
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return true, ReasonTooShort
	}
	lowered := strings.ToLower(s)
	for _, w := range weakPasswords {
		if lowered == w {
			return true, ReasonCommon
		}
	}
	return false, ""
}
