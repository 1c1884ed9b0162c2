package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

var reGoogleAPIKey = regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`)

var GoogleAPIKey = Detector{
	ID:       "google_api_key",
	Name:     "Google API Key",
	Severity: types.SevCritical,
	Pattern:  reGoogleAPIKey,
}
