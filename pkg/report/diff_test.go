package report

import (
	"bytes"
	"strings"
	"testing"

	"confvet-hq/confvet/pkg/verdict"
)

func issue(key, rule string, severity verdict.Severity) verdict.Issue {
	return verdict.Issue{Key: key, Severity: severity, Message: key + " finding", Rule: rule}
}

func TestDiff(t *testing.T) {
	baseline := verdict.Build([]verdict.Issue{
		issue("port", "unsafe-port", verdict.SeverityError),
		issue("host", "public-binding", verdict.SeverityWarning),
	})
	current := verdict.Build([]verdict.Issue{
		issue("host", "public-binding", verdict.SeverityWarning),
		issue("api_key", "hardcoded-secret", verdict.SeverityWarning),
	})

	introduced, resolved, unchanged := Diff(baseline, current)

	if len(introduced) != 1 || introduced[0].Rule != "hardcoded-secret" {
		t.Errorf("introduced = %+v, want the hardcoded-secret finding", introduced)
	}
	if len(resolved) != 1 || resolved[0].Rule != "unsafe-port" {
		t.Errorf("resolved = %+v, want the unsafe-port finding", resolved)
	}
	if unchanged != 1 {
		t.Errorf("unchanged = %d, want 1", unchanged)
	}
}

func TestDiffIdenticalResults(t *testing.T) {
	r := verdict.Build([]verdict.Issue{issue("port", "unsafe-port", verdict.SeverityError)})
	introduced, resolved, unchanged := Diff(r, r)
	if len(introduced) != 0 || len(resolved) != 0 || unchanged != 1 {
		t.Errorf("Diff(r, r) = %v, %v, %d; want no changes", introduced, resolved, unchanged)
	}
}

func TestDiffMatchesDuplicatesOneToOne(t *testing.T) {
	dup := issue("port", "unsafe-port", verdict.SeverityError)
	baseline := verdict.Build([]verdict.Issue{dup, dup})
	current := verdict.Build([]verdict.Issue{dup})

	introduced, resolved, unchanged := Diff(baseline, current)
	if len(introduced) != 0 {
		t.Errorf("introduced = %+v, want none", introduced)
	}
	if len(resolved) != 1 {
		t.Errorf("resolved = %+v, want one of the duplicates", resolved)
	}
	if unchanged != 1 {
		t.Errorf("unchanged = %d, want 1", unchanged)
	}
}

func TestDiffEmptyBaseline(t *testing.T) {
	current := verdict.Build([]verdict.Issue{issue("port", "unsafe-port", verdict.SeverityError)})
	introduced, resolved, unchanged := Diff(verdict.Build(nil), current)
	if len(introduced) != 1 || len(resolved) != 0 || unchanged != 0 {
		t.Errorf("Diff from empty baseline = %v, %v, %d", introduced, resolved, unchanged)
	}
}

func TestWriteDiffText(t *testing.T) {
	d := DiffReport{
		File:     "app.json",
		Revision: "HEAD~1",
		Introduced: []verdict.Issue{
			issue("api_key", "hardcoded-secret", verdict.SeverityWarning),
		},
		Resolved: []verdict.Issue{
			issue("port", "unsafe-port", verdict.SeverityError),
		},
		Unchanged: 2,
	}

	var buf bytes.Buffer
	if err := WriteDiffText(&buf, d); err != nil {
		t.Fatalf("WriteDiffText() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Comparing app.json against HEAD~1...",
		"Introduced (1):",
		"+ [WARNING] api_key finding [hardcoded-secret]",
		"Resolved (1):",
		"- [ERROR] port finding [unsafe-port]",
		"2 finding(s) unchanged",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDiffTextNoChanges(t *testing.T) {
	d := DiffReport{
		File:       "app.json",
		Revision:   "HEAD",
		Introduced: []verdict.Issue{},
		Resolved:   []verdict.Issue{},
		Unchanged:  3,
	}
	var buf bytes.Buffer
	if err := WriteDiffText(&buf, d); err != nil {
		t.Fatalf("WriteDiffText() error: %v", err)
	}
	if !strings.Contains(buf.String(), "✓ No changes in findings (3 unchanged)") {
		t.Errorf("output = %q", buf.String())
	}
}
