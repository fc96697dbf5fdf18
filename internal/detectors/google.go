package detectors

import "regexp"

// Google API keys are AIza + 35 chars.
var GoogleAPIKey = Detector{
	Label:   "GOOGLE_API_KEY",
	Pattern: regexp.MustCompile(`\bAIza[0-9A-Za-z\-_]{35}\b`),
}
