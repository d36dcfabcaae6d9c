package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"confvet-hq/confvet/pkg/cli"
	"confvet-hq/confvet/pkg/conftypes"
	"confvet-hq/confvet/pkg/schema"
)

var schemasFlags struct {
	format string
}

var schemasCmd = &cobra.Command{
	Use:   "schemas [name]",
	Short: "List registered schemas",
	Long: `List the registered schemas, or show one schema in detail.

Without arguments the command lists every registered schema: the
built-ins plus any user schemas loaded from the settings schemas.dir.
With a name it shows that schema's required and optional keys and the
rule attached to each.

Examples:
  # List all schemas
  confvet schemas

  # Show one schema
  confvet schemas application

  # JSON output
  confvet schemas database --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchemas,
}

func init() {
	rootCmd.AddCommand(schemasCmd)

	schemasCmd.Flags().StringVar(&schemasFlags.format, "format", "text", "output format: text, json")
}

func runSchemas(cmd *cobra.Command, args []string) error {
	settings, _, err := setupRuntime()
	if err != nil {
		return err
	}

	registry, err := loadRegistry(settings)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return showSchema(registry, args[0])
	}
	return listSchemas(registry)
}

func listSchemas(registry *schema.Registry) error {
	names := registry.Names()

	if schemasFlags.format == "json" {
		type row struct {
			Name     string `json:"name"`
			Required int    `json:"required"`
			Optional int    `json:"optional"`
		}
		rows := make([]row, 0, len(names))
		for _, name := range names {
			s, _ := registry.Lookup(name)
			rows = append(rows, row{Name: name, Required: len(s.Required), Optional: len(s.Optional)})
		}
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, rows)
	}

	fmt.Printf("Registered schemas (%d):\n", len(names))
	for _, name := range names {
		s, _ := registry.Lookup(name)
		fmt.Printf("  %s (%d required, %d optional)\n", name, len(s.Required), len(s.Optional))
	}
	return nil
}

func showSchema(registry *schema.Registry, name string) error {
	s, ok := registry.Lookup(name)
	if !ok {
		return cli.NewConfigError("schema",
			fmt.Sprintf("unknown schema %q (registered: %s)", name, strings.Join(registry.Names(), ", ")))
	}

	if schemasFlags.format == "json" {
		type field struct {
			Key      string `json:"key"`
			Rule     string `json:"rule"`
			Required bool   `json:"required"`
		}
		out := struct {
			Name   string  `json:"name"`
			Fields []field `json:"fields"`
		}{Name: s.Name, Fields: make([]field, 0, len(s.Required)+len(s.Optional))}
		for _, key := range s.Required {
			out.Fields = append(out.Fields, field{Key: key, Rule: describeRule(s.Rules[key]), Required: true})
		}
		for _, key := range s.Optional {
			out.Fields = append(out.Fields, field{Key: key, Rule: describeRule(s.Rules[key])})
		}
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, out)
	}

	fmt.Printf("Schema %s\n", s.Name)
	fmt.Printf("Required keys (%d):\n", len(s.Required))
	for _, key := range s.Required {
		fmt.Printf("  %s: %s\n", key, describeRule(s.Rules[key]))
	}
	if len(s.Optional) > 0 {
		fmt.Printf("Optional keys (%d):\n", len(s.Optional))
		for _, key := range s.Optional {
			fmt.Printf("  %s: %s\n", key, describeRule(s.Rules[key]))
		}
	}
	return nil
}

// describeRule renders a field rule as a short human-readable summary,
// for example "string, min length 32, notEmpty" or "number, 1 to 65535".
func describeRule(rule schema.FieldRule) string {
	var parts []string
	switch c := rule.Constraint.(type) {
	case schema.StringRule:
		parts = append(parts, "string")
		if c.MinLength != nil {
			parts = append(parts, fmt.Sprintf("min length %d", *c.MinLength))
		}
		if c.MaxLength != nil {
			parts = append(parts, fmt.Sprintf("max length %d", *c.MaxLength))
		}
		if c.Pattern != "" {
			parts = append(parts, fmt.Sprintf("pattern %s", c.Pattern))
		}
		if len(c.Enum) > 0 {
			parts = append(parts, fmt.Sprintf("one of [%s]", strings.Join(c.Enum, ", ")))
		}
	case schema.NumberRule:
		parts = append(parts, "number")
		switch {
		case c.Min != nil && c.Max != nil:
			parts = append(parts, fmt.Sprintf("%s to %s", conftypes.Stringify(*c.Min), conftypes.Stringify(*c.Max)))
		case c.Min != nil:
			parts = append(parts, fmt.Sprintf("min %s", conftypes.Stringify(*c.Min)))
		case c.Max != nil:
			parts = append(parts, fmt.Sprintf("max %s", conftypes.Stringify(*c.Max)))
		}
		if len(c.Enum) > 0 {
			vals := make([]string, len(c.Enum))
			for i, e := range c.Enum {
				vals[i] = conftypes.Stringify(e)
			}
			parts = append(parts, fmt.Sprintf("one of [%s]", strings.Join(vals, ", ")))
		}
	case schema.BoolRule:
		parts = append(parts, "boolean")
	default:
		parts = append(parts, "any")
	}
	if rule.NotEmpty {
		parts = append(parts, "notEmpty")
	}
	return strings.Join(parts, ", ")
}
