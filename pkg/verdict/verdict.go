package verdict

// Severity classifies how serious an Issue is. Errors make a configuration
// invalid; warnings never do.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Issue is a single finding from schema checking or security linting.
type Issue struct {
	// Key is the configuration key the finding is about.
	Key string `json:"key"`
	// Severity is ERROR or WARNING.
	Severity Severity `json:"severity"`
	// Message is the human-readable description of the finding.
	Message string `json:"message"`
	// Rule identifies which check produced the finding, for example
	// "missing-required-key" or "weak-password".
	Rule string `json:"rule"`
}

// Summary carries the issue counts for a Result.
type Summary struct {
	Total        int `json:"total"`
	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
}

// Result is the complete outcome of validating one configuration.
//
// Issues holds every finding in evaluation order; Errors and Warnings are
// severity partitions of the same list, each preserving relative order.
// IsValid is true exactly when Errors is empty, so a configuration with
// only warnings is still valid.
type Result struct {
	IsValid  bool    `json:"isValid"`
	Issues   []Issue `json:"issues"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
	Summary  Summary `json:"summary"`
}

// Build folds an ordered issue list into a Result. All slices on the
// returned Result are non-nil so the JSON form renders [] rather than null.
func Build(issues []Issue) Result {
	r := Result{
		Issues:   make([]Issue, 0, len(issues)),
		Errors:   make([]Issue, 0),
		Warnings: make([]Issue, 0),
	}
	for _, issue := range issues {
		r.Issues = append(r.Issues, issue)
		switch issue.Severity {
		case SeverityError:
			r.Errors = append(r.Errors, issue)
		case SeverityWarning:
			r.Warnings = append(r.Warnings, issue)
		}
	}
	r.Summary = Summary{
		Total:        len(r.Issues),
		ErrorCount:   len(r.Errors),
		WarningCount: len(r.Warnings),
	}
	r.IsValid = r.Summary.ErrorCount == 0
	return r
}
