package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

var reSlack = regexp.MustCompile(`xox[baprs]-[0-9A-Za-z-]{10,48}`)

var SlackToken = Detector{
	ID:       "slack_token",
	Name:     "Slack Token",
	Severity: types.SevHigh,
	Pattern:  reSlack,
}
