package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileSchema mirrors the on-disk schema document. YAML is a superset of
// JSON, so one decoder covers both syntaxes.
type fileSchema struct {
	Name     string              `yaml:"name"`
	Required []string            `yaml:"required"`
	Optional []string            `yaml:"optional"`
	Rules    map[string]fileRule `yaml:"rules"`
}

type fileRule struct {
	Type      string   `yaml:"type"`
	NotEmpty  bool     `yaml:"notEmpty"`
	MinLength *int     `yaml:"minLength"`
	MaxLength *int     `yaml:"maxLength"`
	Pattern   string   `yaml:"pattern"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	Enum      []any    `yaml:"enum"`
}

func (fr fileRule) hasStringConstraints() bool {
	return fr.MinLength != nil || fr.MaxLength != nil || fr.Pattern != ""
}

func (fr fileRule) hasNumberConstraints() bool {
	return fr.Min != nil || fr.Max != nil
}

// Parse decodes a schema document. Constraint declarations are validated
// eagerly: unknown types, patterns that do not compile, and enum values of
// the wrong type are reported here rather than surfacing as silent
// non-matches during validation.
func Parse(data []byte) (*Schema, error) {
	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}

	s := &Schema{
		Name:     doc.Name,
		Required: doc.Required,
		Optional: doc.Optional,
		Rules:    make(map[string]FieldRule, len(doc.Rules)),
	}
	for key, fr := range doc.Rules {
		rule, err := buildRule(key, fr)
		if err != nil {
			return nil, err
		}
		s.Rules[key] = rule
	}
	return s, nil
}

func buildRule(key string, fr fileRule) (FieldRule, error) {
	rule := FieldRule{NotEmpty: fr.NotEmpty}

	switch fr.Type {
	case "string":
		if fr.hasNumberConstraints() {
			return rule, fmt.Errorf("rule %q: min/max do not apply to string rules", key)
		}
		enum, err := stringEnum(key, fr.Enum)
		if err != nil {
			return rule, err
		}
		if fr.Pattern != "" {
			if _, err := regexp.Compile(fr.Pattern); err != nil {
				return rule, fmt.Errorf("rule %q: invalid pattern: %w", key, err)
			}
		}
		rule.Constraint = StringRule{
			MinLength: fr.MinLength,
			MaxLength: fr.MaxLength,
			Pattern:   fr.Pattern,
			Enum:      enum,
		}

	case "number":
		if fr.hasStringConstraints() {
			return rule, fmt.Errorf("rule %q: minLength/maxLength/pattern do not apply to number rules", key)
		}
		enum, err := numberEnum(key, fr.Enum)
		if err != nil {
			return rule, err
		}
		rule.Constraint = NumberRule{Min: fr.Min, Max: fr.Max, Enum: enum}

	case "boolean":
		if fr.hasStringConstraints() || fr.hasNumberConstraints() {
			return rule, fmt.Errorf("rule %q: only enum and notEmpty apply to boolean rules", key)
		}
		enum, err := boolEnum(key, fr.Enum)
		if err != nil {
			return rule, err
		}
		rule.Constraint = BoolRule{Enum: enum}

	case "":
		return inferRule(key, fr)

	default:
		return rule, fmt.Errorf("rule %q: unknown type %q (expected string, number, or boolean)", key, fr.Type)
	}
	return rule, nil
}

// inferRule builds a loose rule from an untyped declaration. The constraint
// family present in the declaration decides the kind; a loose rule's checks
// only run against values that already have that kind.
func inferRule(key string, fr fileRule) (FieldRule, error) {
	rule := FieldRule{NotEmpty: fr.NotEmpty, loose: true}

	if fr.hasStringConstraints() && fr.hasNumberConstraints() {
		return rule, fmt.Errorf("rule %q: cannot mix string and number constraints without a type", key)
	}

	switch {
	case fr.hasStringConstraints():
		enum, err := stringEnum(key, fr.Enum)
		if err != nil {
			return rule, err
		}
		if fr.Pattern != "" {
			if _, err := regexp.Compile(fr.Pattern); err != nil {
				return rule, fmt.Errorf("rule %q: invalid pattern: %w", key, err)
			}
		}
		rule.Constraint = StringRule{
			MinLength: fr.MinLength,
			MaxLength: fr.MaxLength,
			Pattern:   fr.Pattern,
			Enum:      enum,
		}

	case fr.hasNumberConstraints():
		enum, err := numberEnum(key, fr.Enum)
		if err != nil {
			return rule, err
		}
		rule.Constraint = NumberRule{Min: fr.Min, Max: fr.Max, Enum: enum}

	case len(fr.Enum) > 0:
		// Infer the kind from the first enum element.
		switch fr.Enum[0].(type) {
		case string:
			enum, err := stringEnum(key, fr.Enum)
			if err != nil {
				return rule, err
			}
			rule.Constraint = StringRule{Enum: enum}
		case int, float64:
			enum, err := numberEnum(key, fr.Enum)
			if err != nil {
				return rule, err
			}
			rule.Constraint = NumberRule{Enum: enum}
		case bool:
			enum, err := boolEnum(key, fr.Enum)
			if err != nil {
				return rule, err
			}
			rule.Constraint = BoolRule{Enum: enum}
		default:
			return rule, fmt.Errorf("rule %q: enum values must be strings, numbers, or booleans", key)
		}

	default:
		// Only notEmpty (or nothing): no typed constraint at all.
		rule.loose = false
	}
	return rule, nil
}

func stringEnum(key string, raw []any) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("rule %q: enum value %v is not a string", key, v)
		}
		out[i] = s
	}
	return out, nil
}

func numberEnum(key string, raw []any) ([]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		switch n := v.(type) {
		case int:
			out[i] = float64(n)
		case float64:
			out[i] = n
		default:
			return nil, fmt.Errorf("rule %q: enum value %v is not a number", key, v)
		}
	}
	return out, nil
}

func boolEnum(key string, raw []any) ([]bool, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]bool, len(raw))
	for i, v := range raw {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("rule %q: enum value %v is not a boolean", key, v)
		}
		out[i] = b
	}
	return out, nil
}

// LoadFile parses the schema document at path. A document without a name
// is named after the file, so "schemas/service.yaml" registers as
// "service".
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %q: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid schema file %q: %w", path, err)
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// LoadDir parses every schema document (*.yaml, *.yml, *.json) directly
// inside dir, sorted by file name. The caller decides which registry the
// results go into.
func LoadDir(dir string) ([]*Schema, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan schema directory %q: %w", dir, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	schemas := make([]*Schema, 0, len(paths))
	for _, path := range paths {
		s, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}
