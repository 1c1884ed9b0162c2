package detectors

import (
	"regexp"
	"strings"

	"github.com/leakhound/leakhound/internal/types"
)

// Detector is a named, fixed-severity pattern rule. Patterns are compiled
// once at package init; the registry is shared read-only across scans, so
// concurrent scans need no coordination.
type Detector struct {
	ID       string
	Name     string
	Severity types.Severity
	Pattern  *regexp.Regexp
}

// Matches returns the non-overlapping byte-offset spans of the detector's
// pattern within one line.
func (d Detector) Matches(line string) [][]int {
	return d.Pattern.FindAllStringIndex(line, -1)
}

// Registry order is detection order: it fixes finding order when several
// detectors hit the same line.
var all = []Detector{
	AWSAccessKey,
	AWSSecretKey,
	GitHubToken,
	GenericAPIKey,
	MongoURI,
	DatabasePassword,
	GenericPassword,
	PrivateKeyBlock,
	JWTToken,
	SlackToken,
	GoogleAPIKey,
	StripeAPIKey,
	PrivateIP,
	EmailAddress,
}

// All returns the shared registry. Callers must treat it as immutable.
func All() []Detector { return all }

// IDs returns registry IDs in detection order.
func IDs() []string {
	out := make([]string, len(all))
	for i, d := range all {
		out[i] = d.ID
	}
	return out
}

// ByID looks up a detector by its ID.
func ByID(id string) (Detector, bool) {
	for _, d := range all {
		if d.ID == id {
			return d, true
		}
	}
	return Detector{}, false
}

// Subset returns the registry filtered by comma-separated enable/disable ID
// lists, preserving detection order. Empty lists mean no filtering.
func Subset(enable, disable string) []Detector {
	if enable == "" && disable == "" {
		return all
	}
	allowed := map[string]bool{}
	if enable != "" {
		for _, id := range strings.Split(enable, ",") {
			allowed[strings.TrimSpace(id)] = true
		}
	}
	blocked := map[string]bool{}
	if disable != "" {
		for _, id := range strings.Split(disable, ",") {
			blocked[strings.TrimSpace(id)] = true
		}
	}
	var out []Detector
	for _, d := range all {
		if enable != "" && !allowed[d.ID] {
			continue
		}
		if blocked[d.ID] {
			continue
		}
		out = append(out, d)
	}
	return out
}
