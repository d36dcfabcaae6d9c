// Package conftypes classifies and inspects decoded configuration values.
//
// Configuration files are parsed into map[string]any, so every check in the
// engine starts from dynamic values. This package pins down the small type
// system those checks share: the six JSON value kinds, emptiness, string
// rendering, numeric coercion, and pattern matching.
//
// # Usage
//
//	kind := conftypes.Classify(value) // conftypes.KindString, KindNumber, ...
//
//	if conftypes.IsEmpty(value) {
//	    // nil, blank string, or empty container
//	}
//
//	if n, ok := conftypes.AsNumber(value); ok {
//	    // value was a number or a numeric string
//	}
//
// All functions are pure and never panic on unexpected input; a value that
// cannot be coerced simply fails the check.
package conftypes
