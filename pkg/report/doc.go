// Package report renders validation results for humans and machines.
//
// The package consumes verdict.Result values and knows nothing about how
// they were produced. Three renderers cover the check command's --format
// values: WriteText for terminals, WriteJSON for CI pipelines, and
// WriteGrouped for triaging one rule across many files. Diff and
// WriteDiffText support comparing findings between two versions of the
// same configuration.
package report
