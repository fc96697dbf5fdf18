package detectors

import "regexp"

// AWSAccessKeyID matches long-term AWS access key IDs.
var AWSAccessKeyID = Detector{
	Label:   "AWS_ACCESS_KEY_ID",
	Pattern: regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
}
