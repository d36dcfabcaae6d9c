package report

import (
	"fmt"
	"io"

	"confvet-hq/confvet/pkg/verdict"
)

// DiffReport describes how findings changed between two versions of the
// same configuration.
type DiffReport struct {
	File       string          `json:"file"`
	Revision   string          `json:"revision"`
	Schema     string          `json:"schema,omitempty"`
	Introduced []verdict.Issue `json:"introduced"`
	Resolved   []verdict.Issue `json:"resolved"`
	Unchanged  int             `json:"unchanged"`
}

// Diff compares baseline findings against current ones. Issues are
// identified by their full (key, severity, message, rule) tuple, and
// duplicate issues are matched one-to-one, so two identical findings in
// the baseline and one in the current version leave one resolved.
func Diff(baseline, current verdict.Result) (introduced, resolved []verdict.Issue, unchanged int) {
	introduced = make([]verdict.Issue, 0)
	resolved = make([]verdict.Issue, 0)

	remaining := make(map[verdict.Issue]int, len(baseline.Issues))
	for _, issue := range baseline.Issues {
		remaining[issue]++
	}
	for _, issue := range current.Issues {
		if remaining[issue] > 0 {
			remaining[issue]--
			unchanged++
			continue
		}
		introduced = append(introduced, issue)
	}

	open := make(map[verdict.Issue]int, len(current.Issues))
	for _, issue := range current.Issues {
		open[issue]++
	}
	for _, issue := range baseline.Issues {
		if open[issue] > 0 {
			open[issue]--
			continue
		}
		resolved = append(resolved, issue)
	}
	return introduced, resolved, unchanged
}

// WriteDiffJSON renders a diff report as indented JSON.
func WriteDiffJSON(w io.Writer, d DiffReport) error {
	return writeIndentedJSON(w, d)
}

// WriteDiffText renders a diff report for terminals.
func WriteDiffText(w io.Writer, d DiffReport) error {
	fmt.Fprintf(w, "Comparing %s against %s...\n", d.File, d.Revision)

	if len(d.Introduced) == 0 && len(d.Resolved) == 0 {
		fmt.Fprintf(w, "✓ No changes in findings (%d unchanged)\n", d.Unchanged)
		return nil
	}

	if len(d.Introduced) > 0 {
		fmt.Fprintf(w, "Introduced (%d):\n", len(d.Introduced))
		for _, issue := range d.Introduced {
			fmt.Fprintf(w, "  + [%s] %s [%s]\n", issue.Severity, issue.Message, issue.Rule)
		}
	}
	if len(d.Resolved) > 0 {
		fmt.Fprintf(w, "Resolved (%d):\n", len(d.Resolved))
		for _, issue := range d.Resolved {
			fmt.Fprintf(w, "  - [%s] %s [%s]\n", issue.Severity, issue.Message, issue.Rule)
		}
	}
	fmt.Fprintf(w, "%d finding(s) unchanged\n", d.Unchanged)
	return nil
}
