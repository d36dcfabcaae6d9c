package source

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
	kjson "github.com/knadh/koanf/parsers/json"
)

// Parse decodes file content in the given format into configuration values.
func Parse(data []byte, format Format) (map[string]any, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatEnv:
		return parseEnv(data)
	}
	return nil, fmt.Errorf("unsupported configuration format %q", format)
}

// parseJSON decodes a JSON object. A top-level array or scalar is an
// error: the engine validates key/value configurations only.
func parseJSON(data []byte) (map[string]any, error) {
	values, err := kjson.Parser().Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return values, nil
}

func parseEnv(data []byte) (map[string]any, error) {
	pairs, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, err
	}
	values := make(map[string]any, len(pairs))
	for k, v := range pairs {
		values[k] = coerceScalar(v)
	}
	return values, nil
}

var numberLiteral = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// coerceScalar upgrades a dotenv string that is an unambiguous boolean or
// numeric literal to its typed form. Everything else stays a string.
func coerceScalar(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if numberLiteral.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
