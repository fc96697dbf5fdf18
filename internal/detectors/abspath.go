package detectors

import "regexp"

// AbsolutePath flags leaked Unix home directories such as /home/alice/.
// Other OS home layouts are intentionally not covered.
var AbsolutePath = Detector{
	Label:   "ABSOLUTE_PATH",
	Pattern: regexp.MustCompile(`/home/[a-z]+/`),
}
