/*
Package rules implements the security lint rules applied to every
configuration, with or without a schema.

# Overview

Each rule inspects one key/value pair, with access to the whole
configuration for the rules that need surrounding context. The battery is a
fixed, ordered table:

	weak-password        WARNING  secret-looking key holds a weak literal
	hardcoded-secret     WARNING  secret-looking key holds a literal value
	unsafe-port          ERROR    port key in the privileged range (1-1023)
	public-binding       WARNING  host/bind key set to 0.0.0.0 or ::
	insecure-protocol    WARNING  url/uri key using http:// (localhost exempt)
	debug-in-production  ERROR    debug enabled while environment is production
	missing-value        ERROR    key explicitly set to null

Evaluate walks the configuration keys in sorted order and applies the
table in order to each key, so the issue list for a given configuration
is always the same. Rules are independent: one key can collect findings
from several rules in the same pass.
*/
package rules
