// Package verdict defines the validation result model.
//
// A validation run over one configuration produces an ordered list of
// Issues; Build folds that list into a Result carrying the overall verdict,
// severity partitions, and counts. The JSON field names on these types are
// the tool's machine-readable output contract and are consumed by CI
// pipelines, so they must not change.
package verdict
