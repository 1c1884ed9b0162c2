package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

var reStripe = regexp.MustCompile(`(sk|pk)_(test|live)_[0-9A-Za-z]{24,}`)

var StripeAPIKey = Detector{
	ID:       "stripe_api_key",
	Name:     "Stripe API Key",
	Severity: types.SevCritical,
	Pattern:  reStripe,
}
