package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"confvet-hq/confvet/pkg/cli"
	"confvet-hq/confvet/pkg/config"
	"confvet-hq/confvet/pkg/report"
	"confvet-hq/confvet/pkg/schema"
	"confvet-hq/confvet/pkg/source"
	"confvet-hq/confvet/pkg/validator"
)

var checkFlags struct {
	file       string
	dir        string
	schemaName string
	schemaFile string
	format     string
	strict     bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration files",
	Long: `Validate configuration files against a schema and the security rules.

The check command loads each configuration source (JSON or dotenv),
checks schema conformance when a schema is given, and always runs the
security rule battery. Warnings never make a configuration invalid, but
--strict makes them fail the exit code.

Examples:
  # Validate a single file against a built-in schema
  confvet check --file config.json --schema application

  # Validate without a schema (security rules only)
  confvet check --file .env

  # Validate a directory of configuration files
  confvet check --dir deploy/

  # Layer a schema file over a built-in
  confvet check --file config.json --schema application --schema-file overrides.yaml

  # JSON output for CI/CD, warnings blocking
  confvet check --file config.json --format json --strict`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.file, "file", "f", "", "configuration file to validate")
	checkCmd.Flags().StringVarP(&checkFlags.dir, "dir", "d", "", "directory of configuration files")
	checkCmd.Flags().StringVar(&checkFlags.schemaName, "schema", "", "schema name (see: confvet schemas)")
	checkCmd.Flags().StringVar(&checkFlags.schemaFile, "schema-file", "", "schema file, merged over --schema when both are given")
	checkCmd.Flags().StringVar(&checkFlags.format, "format", "", "output format: text, json, grouped")
	checkCmd.Flags().BoolVar(&checkFlags.strict, "strict", false, "treat warnings as errors")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkFlags.file == "" && checkFlags.dir == "" {
		return cli.NewConfigError("file", "either --file or --dir must be specified")
	}
	if checkFlags.file != "" && checkFlags.dir != "" {
		return cli.NewConfigError("file", "--file and --dir are mutually exclusive")
	}

	settings, logger, err := setupRuntime()
	if err != nil {
		return err
	}

	format, err := resolveFormat(checkFlags.format, settings)
	if err != nil {
		return err
	}
	strict := checkFlags.strict || settings.Strict

	sch, schemaName, err := resolveSchema(checkFlags.schemaName, checkFlags.schemaFile, settings)
	if err != nil {
		return err
	}

	paths, err := collectPaths(checkFlags.file, checkFlags.dir)
	if err != nil {
		return err
	}

	reports := make([]report.FileReport, 0, len(paths))
	for _, path := range paths {
		f, err := source.Load(path)
		if err != nil {
			return cli.NewCommandError("check", err)
		}
		logger.Debug("validating configuration",
			"file", path,
			"format", string(f.Format),
			"schema", schemaName,
		)
		result := validator.Validate(f.Values, sch)
		reports = append(reports, report.FileReport{
			File:   path,
			Format: string(f.Format),
			Schema: schemaName,
			Result: result,
		})
	}

	if err := renderReports(os.Stdout, format, reports); err != nil {
		return cli.NewCommandError("check", err)
	}

	errors, warnings := report.Totals(reports)
	if errors > 0 || (strict && warnings > 0) {
		return &cli.FindingsError{Errors: errors, Warnings: warnings, Strict: strict}
	}
	return nil
}

// resolveFormat applies the --format flag over the settings default and
// validates the result.
func resolveFormat(flag string, settings *config.Settings) (cli.OutputFormat, error) {
	raw := settings.Output.Format
	if flag != "" {
		raw = flag
	}
	format, err := cli.ParseFormat(raw)
	if err != nil {
		return "", cli.NewConfigError("format", err.Error())
	}
	return format, nil
}

// collectPaths resolves the --file/--dir pair into the list of files to
// validate. Exactly one of the two is set by the time this runs.
func collectPaths(file, dir string) ([]string, error) {
	if file != "" {
		return []string{file}, nil
	}
	paths, err := source.Discover(dir)
	if err != nil {
		return nil, cli.NewCommandError("check", err)
	}
	if len(paths) == 0 {
		return nil, cli.NewCommandError("check", fmt.Errorf("no configuration files found in %q", dir))
	}
	return paths, nil
}

// loadRegistry returns the schema registry with any user schemas from the
// settings schemas.dir registered on top of the built-ins.
func loadRegistry(settings *config.Settings) (*schema.Registry, error) {
	registry := schema.Default()
	if settings.Schemas.Dir == "" {
		return registry, nil
	}
	loaded, err := schema.LoadDir(settings.Schemas.Dir)
	if err != nil {
		return nil, cli.NewConfigError("schemas.dir", err.Error())
	}
	for _, s := range loaded {
		if err := registry.Register(s); err != nil {
			return nil, cli.NewConfigError("schemas.dir", err.Error())
		}
	}
	return registry, nil
}

// resolveSchema turns the --schema and --schema-file flags into the schema
// to validate against, or nil for security rules only. The returned name
// is what reports carry in their schema field.
func resolveSchema(name, file string, settings *config.Settings) (*schema.Schema, string, error) {
	registry, err := loadRegistry(settings)
	if err != nil {
		return nil, "", err
	}

	var base *schema.Schema
	if name != "" {
		s, ok := registry.Lookup(name)
		if !ok {
			return nil, "", cli.NewConfigError("schema",
				fmt.Sprintf("unknown schema %q (registered: %s)", name, strings.Join(registry.Names(), ", ")))
		}
		base = s
	}

	if file != "" {
		overlay, err := schema.LoadFile(file)
		if err != nil {
			return nil, "", cli.NewConfigError("schema-file", err.Error())
		}
		if base != nil {
			merged := schema.Merge(base, overlay)
			return merged, merged.Name, nil
		}
		return overlay, overlay.Name, nil
	}

	if base == nil {
		return nil, "", nil
	}
	return base, base.Name, nil
}

func renderReports(w io.Writer, format cli.OutputFormat, reports []report.FileReport) error {
	switch format {
	case cli.FormatJSON:
		return report.WriteJSON(w, reports)
	case cli.FormatGrouped:
		return report.WriteGrouped(w, reports)
	default:
		return report.WriteText(w, reports)
	}
}
