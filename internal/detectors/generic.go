package detectors

import "regexp"

// GenericSecretAssign flags key/value assignments of a quoted value of at
// least 12 characters to a secret-sounding key. RE2 has no backreferences, so
// each quote style is spelled out to keep the closing quote matched.
var GenericSecretAssign = Detector{
	Label: "GENERIC_SECRET_ASSIGN",
	Pattern: regexp.MustCompile(
		`(?i)\b(?:api[_-]?key|secret|token|password)\b\s*[:=]\s*(?:"[^"']{12,}"|'[^"']{12,}')`,
	),
}
