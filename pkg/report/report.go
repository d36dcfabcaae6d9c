package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"confvet-hq/confvet/pkg/verdict"
)

// FileReport pairs one validated source file with its result.
type FileReport struct {
	// File is the path as given on the command line.
	File string `json:"file"`
	// Format is the detected source format, json or env.
	Format string `json:"format"`
	// Schema names the schema the file was checked against, empty when
	// validation ran without one.
	Schema string `json:"schema,omitempty"`
	// Result is the full validation outcome.
	Result verdict.Result `json:"result"`
}

// Totals sums the issue counts across a set of reports.
func Totals(reports []FileReport) (errors, warnings int) {
	for _, r := range reports {
		errors += r.Result.Summary.ErrorCount
		warnings += r.Result.Summary.WarningCount
	}
	return errors, warnings
}

// WriteJSON renders reports as indented JSON.
func WriteJSON(w io.Writer, reports []FileReport) error {
	return writeIndentedJSON(w, reports)
}

func writeIndentedJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteText renders a per-file report followed by a closing summary.
func WriteText(w io.Writer, reports []FileReport) error {
	for _, r := range reports {
		fmt.Fprintf(w, "Validating %s (%s)...\n", r.File, describeSource(r))

		if r.Result.Summary.Total == 0 {
			if r.Schema != "" {
				fmt.Fprintln(w, "✓ Schema conformance passed")
			}
			fmt.Fprintln(w, "✓ Security rules passed")
		}

		for _, issue := range r.Result.Errors {
			fmt.Fprintf(w, "✗ Error: %s [%s]\n", issue.Message, issue.Rule)
		}
		for _, issue := range r.Result.Warnings {
			fmt.Fprintf(w, "⚠  Warning: %s [%s]\n", issue.Message, issue.Rule)
		}

		fmt.Fprintln(w)
	}

	errors, warnings := Totals(reports)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  %d error(s), %d warning(s)\n", errors, warnings)
	return nil
}

// WriteGrouped renders issues bucketed by severity and then by rule, which
// reads better than the per-file report when one rule fires across many
// files.
func WriteGrouped(w io.Writer, reports []FileReport) error {
	type entry struct {
		file    string
		message string
	}
	buckets := map[verdict.Severity]map[string][]entry{
		verdict.SeverityError:   {},
		verdict.SeverityWarning: {},
	}
	for _, r := range reports {
		for _, issue := range r.Result.Issues {
			bucket, ok := buckets[issue.Severity]
			if !ok {
				continue
			}
			bucket[issue.Rule] = append(bucket[issue.Rule], entry{file: r.File, message: issue.Message})
		}
	}

	for _, severity := range []verdict.Severity{verdict.SeverityError, verdict.SeverityWarning} {
		bucket := buckets[severity]
		if len(bucket) == 0 {
			continue
		}

		total := 0
		for _, entries := range bucket {
			total += len(entries)
		}
		switch severity {
		case verdict.SeverityError:
			fmt.Fprintf(w, "Errors (%d):\n", total)
		case verdict.SeverityWarning:
			fmt.Fprintf(w, "Warnings (%d):\n", total)
		}

		ruleNames := make([]string, 0, len(bucket))
		for name := range bucket {
			ruleNames = append(ruleNames, name)
		}
		sort.Strings(ruleNames)

		for _, name := range ruleNames {
			fmt.Fprintf(w, "  %s (%d)\n", name, len(bucket[name]))
			for _, e := range bucket[name] {
				fmt.Fprintf(w, "    %s: %s\n", e.file, e.message)
			}
		}
		fmt.Fprintln(w)
	}

	errors, warnings := Totals(reports)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  %d error(s), %d warning(s)\n", errors, warnings)
	return nil
}

func describeSource(r FileReport) string {
	if r.Schema == "" {
		return r.Format
	}
	return fmt.Sprintf("%s, schema %s", r.Format, r.Schema)
}
