// Confvet validates application configuration files against schemas and a
// battery of security lint rules.
//
// It reads JSON and dotenv configuration sources and reports:
//   - Missing required keys and unexpected keys
//   - Type and constraint violations (lengths, ranges, patterns, enums)
//   - Security findings (weak passwords, hardcoded secrets, unsafe ports,
//     public bindings, insecure protocols, debug mode in production)
//
// Usage:
//
//	# Validate a single file against a built-in schema
//	confvet check --file config.json --schema application
//
//	# Validate every configuration file in a directory
//	confvet check --dir deploy/ --format grouped
//
//	# Revalidate continuously as files change
//	confvet watch --dir deploy/ --metrics-addr 127.0.0.1:9471
//
//	# Compare findings against the last committed version
//	confvet diff --file .env --rev HEAD
//
//	# Inspect the built-in schemas and security rules
//	confvet schemas application
//	confvet rules
//
// For complete documentation, see: https://github.com/confvet-hq/confvet
package main

func main() {
	Execute()
}
