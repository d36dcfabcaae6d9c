package verdict

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildPartitionsBySeverity(t *testing.T) {
	issues := []Issue{
		{Key: "a", Severity: SeverityWarning, Message: "w1", Rule: "r1"},
		{Key: "b", Severity: SeverityError, Message: "e1", Rule: "r2"},
		{Key: "c", Severity: SeverityWarning, Message: "w2", Rule: "r1"},
		{Key: "d", Severity: SeverityError, Message: "e2", Rule: "r3"},
	}

	r := Build(issues)

	if r.IsValid {
		t.Error("Build() with errors should be invalid")
	}
	if len(r.Issues) != 4 {
		t.Fatalf("len(Issues) = %d, want 4", len(r.Issues))
	}
	if len(r.Errors) != 2 || r.Errors[0].Message != "e1" || r.Errors[1].Message != "e2" {
		t.Errorf("Errors = %+v, want e1 then e2", r.Errors)
	}
	if len(r.Warnings) != 2 || r.Warnings[0].Message != "w1" || r.Warnings[1].Message != "w2" {
		t.Errorf("Warnings = %+v, want w1 then w2", r.Warnings)
	}
	if r.Summary.Total != 4 || r.Summary.ErrorCount != 2 || r.Summary.WarningCount != 2 {
		t.Errorf("Summary = %+v, want {4 2 2}", r.Summary)
	}
}

func TestBuildWarningsOnlyIsValid(t *testing.T) {
	r := Build([]Issue{{Key: "k", Severity: SeverityWarning, Message: "m", Rule: "r"}})
	if !r.IsValid {
		t.Error("a warnings-only result should be valid")
	}
	if r.Summary.ErrorCount != 0 || r.Summary.WarningCount != 1 {
		t.Errorf("Summary = %+v, want {1 0 1}", r.Summary)
	}
}

func TestBuildPreservesInputOrder(t *testing.T) {
	issues := []Issue{
		{Key: "z", Severity: SeverityError, Message: "first", Rule: "r"},
		{Key: "a", Severity: SeverityError, Message: "second", Rule: "r"},
	}
	r := Build(issues)
	if r.Issues[0].Message != "first" || r.Issues[1].Message != "second" {
		t.Errorf("Issues reordered: %+v", r.Issues)
	}
}

func TestEmptyResultMarshalsWithEmptyArrays(t *testing.T) {
	r := Build(nil)
	if !r.IsValid {
		t.Error("empty result should be valid")
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "null") {
		t.Errorf("empty result marshals null somewhere: %s", out)
	}
	for _, want := range []string{`"isValid":true`, `"issues":[]`, `"errors":[]`, `"warnings":[]`, `"total":0`} {
		if !strings.Contains(out, want) {
			t.Errorf("marshaled result missing %s: %s", want, out)
		}
	}
}

func TestIssueFieldNames(t *testing.T) {
	data, err := json.Marshal(Issue{Key: "k", Severity: SeverityError, Message: "m", Rule: "r"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"key"`, `"severity"`, `"message"`, `"rule"`} {
		if !strings.Contains(out, want) {
			t.Errorf("issue JSON missing field %s: %s", want, out)
		}
	}
}
