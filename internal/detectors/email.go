package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

var reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// EmailAddress matches anything email-shaped. Raw matches are noisy
// (connection strings embed user@host fragments), so the engine's
// false-positive filter decides which ones survive.
var EmailAddress = Detector{
	ID:       "email_address",
	Name:     "Email Address (PII)",
	Severity: types.SevLow,
	Pattern:  reEmail,
}
