package detectors

import "regexp"

// PrivateKeyBlock flags PEM private key headers, typed or untyped.
var PrivateKeyBlock = Detector{
	Label:   "PRIVATE_KEY_BLOCK",
	Pattern: regexp.MustCompile(`-----BEGIN (?:(?:RSA|EC|OPENSSH|DSA|PGP) )?PRIVATE KEY-----`),
}
