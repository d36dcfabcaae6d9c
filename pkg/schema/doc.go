/*
Package schema declares expected configuration shapes and checks
configurations against them.

# Overview

A Schema names the keys a configuration must have, the keys it may have,
and a FieldRule per key. Check walks a whole configuration against a
schema and produces verdict issues; Evaluate applies a single field rule
to a single value.

The package ships built-in schemas (application, database, auth) through a
process-wide registry, and user-defined schema files can be parsed and
registered alongside them:

	s, ok := schema.Default().Lookup("application")
	if !ok {
		// unknown schema name
	}
	issues := schema.Check(values, s)

# Field Rules

Constraints are typed: a string rule carries length, pattern, and enum
constraints, a number rule carries bounds and an enum, a boolean rule an
enum. A declared type that does not match the value yields a single
wrong-type issue and suppresses the constraint checks, so a number bound is
never compared against a string.

# Schema Files

User schemas are YAML or JSON documents:

	name: service
	required: [listen_port]
	optional: [debug]
	rules:
	  listen_port:
	    type: number
	    min: 1024
	    max: 65535

Parsed schemas can extend built-ins through Merge, which unions key sets
and lets the overlay replace individual field rules.
*/
package schema
