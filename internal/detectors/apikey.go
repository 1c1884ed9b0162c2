package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

// The ≥20-char value requirement keeps short config noise out of this
// deliberately broad pattern.
var reGenericAPIKey = regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?token)\s*[:=]\s*["']?[A-Za-z0-9_-]{20,}`)

var GenericAPIKey = Detector{
	ID:       "generic_api_key",
	Name:     "Generic API Key",
	Severity: types.SevHigh,
	Pattern:  reGenericAPIKey,
}
