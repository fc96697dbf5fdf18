package detectors

import "regexp"

// SlackToken matches bot, app, user, refresh and legacy Slack tokens.
var SlackToken = Detector{
	Label:   "SLACK_TOKEN",
	Pattern: regexp.MustCompile(`\bxox[baprs]-[0-9A-Za-z-]{10,48}\b`),
}
