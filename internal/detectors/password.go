package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

var (
	reDBPassword = regexp.MustCompile(`(?i)(db_password|database_password)\s*[:=]\s*["'][^"']+["']`)
	// Quoted value of at least 6 non-space characters.
	reGenericPassword = regexp.MustCompile(`(?i)(password|pwd|pass)\s*[:=]\s*["'][^\s"']{6,}["']`)
)

var DatabasePassword = Detector{
	ID:       "db_password",
	Name:     "Database Password",
	Severity: types.SevCritical,
	Pattern:  reDBPassword,
}

var GenericPassword = Detector{
	ID:       "generic_password",
	Name:     "Generic Password",
	Severity: types.SevHigh,
	Pattern:  reGenericPassword,
}
