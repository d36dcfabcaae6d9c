package validator

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"confvet-hq/confvet/pkg/schema"
	"confvet-hq/confvet/pkg/verdict"
)

// genConfig generates configurations with mixed value types. The value type
// is derived from the key so a given generated map always converts the same
// way.
func genConfig() gopter.Gen {
	return gen.MapOf(gen.Identifier(), gen.AlphaString()).Map(func(values map[string]string) map[string]any {
		config := make(map[string]any, len(values))
		for k, v := range values {
			switch len(k) % 4 {
			case 0:
				config[k] = v
			case 1:
				config[k] = float64(len(v))
			case 2:
				config[k] = len(v)%2 == 0
			case 3:
				config[k] = nil
			}
		}
		return config
	})
}

func TestValidateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	applicationSchema, ok := schema.Default().Lookup("application")
	if !ok {
		t.Fatal("application schema missing from default registry")
	}

	properties.Property("repeated validation yields identical results", prop.ForAll(
		func(config map[string]any) bool {
			first := Validate(config, applicationSchema)
			second := Validate(config, applicationSchema)
			return reflect.DeepEqual(first, second)
		},
		genConfig(),
	))

	properties.Property("isValid holds exactly when no errors", prop.ForAll(
		func(config map[string]any) bool {
			r := Validate(config, applicationSchema)
			return r.IsValid == (len(r.Errors) == 0)
		},
		genConfig(),
	))

	properties.Property("partitions cover the issue list and the summary counts them", prop.ForAll(
		func(config map[string]any) bool {
			r := Validate(config, nil)
			return len(r.Errors)+len(r.Warnings) == len(r.Issues) &&
				r.Summary.Total == len(r.Issues) &&
				r.Summary.ErrorCount == len(r.Errors) &&
				r.Summary.WarningCount == len(r.Warnings)
		},
		genConfig(),
	))

	properties.Property("every issue carries a rule and a message", prop.ForAll(
		func(config map[string]any) bool {
			r := Validate(config, applicationSchema)
			for _, issue := range r.Issues {
				if issue.Rule == "" || issue.Message == "" {
					return false
				}
				if issue.Severity != verdict.SeverityError && issue.Severity != verdict.SeverityWarning {
					return false
				}
			}
			return true
		},
		genConfig(),
	))

	properties.Property("schema issues precede security issues", prop.ForAll(
		func(config map[string]any) bool {
			schemaRules := map[string]bool{
				schema.RuleMissingRequiredKey: true,
				schema.RuleUnexpectedKey:      true,
				schema.RuleValidationError:    true,
			}
			r := Validate(config, applicationSchema)
			seenSecurity := false
			for _, issue := range r.Issues {
				if schemaRules[issue.Rule] {
					if seenSecurity {
						return false
					}
					continue
				}
				seenSecurity = true
			}
			return true
		},
		genConfig(),
	))

	properties.Property("the input configuration is never modified", prop.ForAll(
		func(config map[string]any) bool {
			snapshot := make(map[string]any, len(config))
			for k, v := range config {
				snapshot[k] = v
			}
			Validate(config, applicationSchema)
			return reflect.DeepEqual(config, snapshot)
		},
		genConfig(),
	))

	properties.Property("result slices are never nil", prop.ForAll(
		func(config map[string]any) bool {
			r := Validate(config, nil)
			return r.Issues != nil && r.Errors != nil && r.Warnings != nil
		},
		genConfig(),
	))

	properties.Property("missing-required-key count matches the absent required keys", prop.ForAll(
		func(config map[string]any) bool {
			r := Validate(config, applicationSchema)
			absent := 0
			for _, key := range applicationSchema.Required {
				if _, ok := config[key]; !ok {
					absent++
				}
			}
			missing := 0
			for _, issue := range r.Issues {
				if issue.Rule == schema.RuleMissingRequiredKey {
					missing++
				}
			}
			return missing == absent
		},
		genConfig(),
	))

	properties.Property("dollar-prefixed values are never hardcoded secrets", prop.ForAll(
		func(suffix string) bool {
			r := Validate(map[string]any{"api_key": "$" + suffix}, nil)
			for _, issue := range r.Issues {
				if issue.Rule == "hardcoded-secret" {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
