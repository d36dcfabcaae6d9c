package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"confvet-hq/confvet/pkg/cli"
	"confvet-hq/confvet/pkg/gitrev"
	"confvet-hq/confvet/pkg/report"
	"confvet-hq/confvet/pkg/source"
	"confvet-hq/confvet/pkg/validator"
	"confvet-hq/confvet/pkg/verdict"
)

var diffFlags struct {
	file       string
	revision   string
	schemaName string
	schemaFile string
	format     string
	strict     bool
}

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare findings against a git revision",
	Long: `Compare validation findings between the working tree and a revision.

The diff command validates the file as it is on disk and the same file
as it was at the given revision, then reports which findings the change
introduced and which it resolved. The repository is discovered from the
file's location; everything is read locally, nothing touches the
network. A file absent at the revision diffs against an empty baseline,
so all current findings count as introduced.

The exit code follows the introduced findings only: resolved and
unchanged findings never fail a diff.

Examples:
  # Compare against the last commit
  confvet diff --file .env

  # Compare against an older revision
  confvet diff --file config.json --rev HEAD~3 --schema application

  # JSON output for CI/CD
  confvet diff --file config.json --rev main --format json`,
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringVarP(&diffFlags.file, "file", "f", "", "configuration file to compare")
	diffCmd.Flags().StringVar(&diffFlags.revision, "rev", "HEAD", "git revision to compare against")
	diffCmd.Flags().StringVar(&diffFlags.schemaName, "schema", "", "schema name (see: confvet schemas)")
	diffCmd.Flags().StringVar(&diffFlags.schemaFile, "schema-file", "", "schema file, merged over --schema when both are given")
	diffCmd.Flags().StringVar(&diffFlags.format, "format", "", "output format: text, json")
	diffCmd.Flags().BoolVar(&diffFlags.strict, "strict", false, "treat introduced warnings as errors")
}

func runDiff(cmd *cobra.Command, args []string) error {
	if diffFlags.file == "" {
		return cli.NewConfigError("file", "--file must be specified")
	}

	settings, logger, err := setupRuntime()
	if err != nil {
		return err
	}

	format, err := resolveFormat(diffFlags.format, settings)
	if err != nil {
		return err
	}
	if format == cli.FormatGrouped {
		// The settings default can be grouped for check runs; the diff
		// report has no grouped form.
		format = cli.FormatText
	}
	strict := diffFlags.strict || settings.Strict

	sch, schemaName, err := resolveSchema(diffFlags.schemaName, diffFlags.schemaFile, settings)
	if err != nil {
		return err
	}

	current, err := source.Load(diffFlags.file)
	if err != nil {
		return cli.NewCommandError("diff", err)
	}

	repo, err := gitrev.Open(diffFlags.file)
	if err != nil {
		return cli.NewCommandError("diff", err)
	}

	baseline := verdict.Build(nil)
	data, err := repo.FileAt(diffFlags.revision, diffFlags.file)
	switch {
	case errors.Is(err, gitrev.ErrFileNotAtRevision):
		logger.Debug("file not present at revision, using empty baseline",
			"file", diffFlags.file,
			"revision", diffFlags.revision,
		)
	case err != nil:
		return cli.NewCommandError("diff", err)
	default:
		values, err := source.Parse(data, source.DetectFormat(diffFlags.file, data))
		if err != nil {
			return cli.NewCommandError("diff",
				fmt.Errorf("failed to parse %q at %s: %w", diffFlags.file, diffFlags.revision, err))
		}
		baseline = validator.Validate(values, sch)
	}

	result := validator.Validate(current.Values, sch)
	introduced, resolved, unchanged := report.Diff(baseline, result)

	d := report.DiffReport{
		File:       diffFlags.file,
		Revision:   diffFlags.revision,
		Schema:     schemaName,
		Introduced: introduced,
		Resolved:   resolved,
		Unchanged:  unchanged,
	}

	var renderErr error
	if format == cli.FormatJSON {
		renderErr = report.WriteDiffJSON(os.Stdout, d)
	} else {
		renderErr = report.WriteDiffText(os.Stdout, d)
	}
	if renderErr != nil {
		return cli.NewCommandError("diff", renderErr)
	}

	errorCount, warningCount := 0, 0
	for _, issue := range introduced {
		switch issue.Severity {
		case verdict.SeverityError:
			errorCount++
		case verdict.SeverityWarning:
			warningCount++
		}
	}
	if errorCount > 0 || (strict && warningCount > 0) {
		return &cli.FindingsError{Errors: errorCount, Warnings: warningCount, Strict: strict}
	}
	return nil
}
