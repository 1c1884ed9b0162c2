package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

// PAT formats evolve; cover ghp_, gho_, ghu_, ghs_, ghr_
var reGitHub = regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36,}`)

var GitHubToken = Detector{
	ID:       "github_token",
	Name:     "GitHub Token",
	Severity: types.SevCritical,
	Pattern:  reGitHub,
}
