// Package validator merges schema conformance checking and security linting
// into a single verdict.
//
// Validate is the engine's core entry point. It is a pure function of its
// two inputs: no I/O, no clock, no randomness, no shared state. Loading
// files, picking schemas, and rendering reports all live elsewhere; callers
// hand in a decoded configuration and (optionally) a schema, and get back a
// verdict.Result.
package validator
