package conftypes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// IsEmpty reports whether a value carries no usable content: nil, a string
// that is empty or only whitespace, or a container with no elements.
// Zero and false are values, not absences, and are never empty.
func IsEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}

// AsNumber coerces a value to a float64. Numbers convert directly and
// strings are parsed as decimal literals. Booleans, containers, and nil
// do not coerce.
func AsNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// InRange reports whether a value coerces to a number within [min, max].
// Both bounds are inclusive. A value that does not coerce fails the check.
func InRange(v any, min, max float64) bool {
	n, ok := AsNumber(v)
	if !ok {
		return false
	}
	return n >= min && n <= max
}

// MatchesPattern reports whether the string form of a value matches the
// given regular expression. The match is unanchored. An invalid pattern
// never matches.
func MatchesPattern(v any, pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(Stringify(v))
}

// Stringify renders a value in its plain string form: strings verbatim,
// numbers without exponent notation, booleans as true or false, and null
// as the empty string.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	}
	return fmt.Sprintf("%v", v)
}
