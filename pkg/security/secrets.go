package security

import "regexp"

// secretKeyPatterns lists the naming conventions under which configuration
// keys hold credentials. Matching is case-insensitive and unanchored, so
// "DB_PASSWORD" and "stripe_api_key_test" both match.
var secretKeyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)password`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`(?i)token`),
	regexp.MustCompile(`(?i)api[_-]?key`),
	regexp.MustCompile(`(?i)auth`),
	regexp.MustCompile(`(?i)apikey`),
	regexp.MustCompile(`(?i)private[_-]?key`),
	regexp.MustCompile(`(?i)aws[_-]?(secret|access)[_-]?key`),
	regexp.MustCompile(`(?i)sql[_-]?password`),
}

// LooksLikeSecretKey reports whether a key name conventionally denotes a
// credential: a password, secret, token, API key, or similar.
func LooksLikeSecretKey(name string) bool {
	for _, re := range secretKeyPatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
