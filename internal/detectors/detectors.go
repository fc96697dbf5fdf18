package detectors

import (
	"regexp"
	"strings"
)

// Detector is a labelled pattern recognising one class of secret-like content.
type Detector struct {
	Label   string
	Pattern *regexp.Regexp
}

// Line returns the 1-based line of the first match in text, or 0 when the
// pattern does not match.
func (d Detector) Line(text string) int {
	loc := d.Pattern.FindStringIndex(text)
	if loc == nil {
		return 0
	}
	return strings.Count(text[:loc[0]], "\n") + 1
}

// Declaration order is significant: Match reports the first hit.
var all = []Detector{
	PrivateKeyBlock,
	AWSAccessKeyID,
	GoogleAPIKey,
	SlackToken,
	AbsolutePath,
	GenericSecretAssign,
}

// All returns a copy of the ordered detector table.
func All() []Detector {
	out := make([]Detector, len(all))
	copy(out, all)
	return out
}

// Labels returns detector labels in evaluation order.
func Labels() []string {
	ids := make([]string, 0, len(all))
	for _, d := range all {
		ids = append(ids, d.Label)
	}
	return ids
}

// Lookup finds a detector by label.
func Lookup(label string) (Detector, bool) {
	for _, d := range all {
		if d.Label == label {
			return d, true
		}
	}
	return Detector{}, false
}

// Match applies ds to text in order and returns the first detector that finds
// a match anywhere in text.
func Match(text string, ds []Detector) (Detector, bool) {
	for _, d := range ds {
		if d.Pattern.MatchString(text) {
			return d, true
		}
	}
	return Detector{}, false
}
