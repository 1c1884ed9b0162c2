package engine

import (
	"regexp"
	"strings"

	"github.com/leakhound/leakhound/internal/detectors"
	"github.com/leakhound/leakhound/internal/types"
)

// Context-sensitive suppression applied after pattern matching, before a
// match becomes a finding. Rules run in order; the first applicable rule
// decides. Suppressed matches are discarded silently and counted nowhere.

// user-info fragment of a credential-style URI: [:/]user@host
var reCredentialEmbed = regexp.MustCompile(`[:/][A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+`)

var emailIndicators = []string{
	"email:", "email=", "mailto:", "from:", "from=", "to:", "to=", "recipient",
}

var publicEmailProviders = map[string]bool{
	"gmail":   true,
	"yahoo":   true,
	"outlook": true,
	"hotmail": true,
	"icloud":  true,
}

func suppressed(d detectors.Detector, line, match string) bool {
	if isCommentLine(line) && d.Severity == types.SevLow {
		return true
	}
	if d.ID == detectors.EmailAddress.ID {
		return !likelyRealEmail(line, match)
	}
	return false
}

func isCommentLine(line string) bool {
	t := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(t, "//") || strings.HasPrefix(t, "#") || strings.HasPrefix(t, "*")
}

// likelyRealEmail separates contact addresses from user-info artifacts of
// connection strings. The default is suppression: an address with no
// positive indicator is dropped even when no reject rule fires.
func likelyRealEmail(line, match string) bool {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "mongodb") || strings.Contains(lower, "://") || strings.Contains(lower, "cluster") {
		return false
	}
	if reCredentialEmbed.MatchString(line) {
		return false
	}
	for _, ind := range emailIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	if at := strings.LastIndex(match, "@"); at >= 0 {
		domain := strings.ToLower(match[at+1:])
		if dot := strings.IndexByte(domain, '.'); dot > 0 && publicEmailProviders[domain[:dot]] {
			return true
		}
	}
	return false
}
