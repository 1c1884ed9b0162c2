package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

// Three dot-separated base64url segments, each at least 10 chars; the header
// segment of any JSON JWT starts with eyJ ({" base64-encoded).
var reJWT = regexp.MustCompile(`eyJ[A-Za-z0-9_-]{7,}\.[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`)

var JWTToken = Detector{
	ID:       "jwt_token",
	Name:     "JWT Token",
	Severity: types.SevMed,
	Pattern:  reJWT,
}
