package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

var (
	reAWSAccess = regexp.MustCompile(`AKIA[0-9A-Z]{16}`)
	reAWSSecret = regexp.MustCompile(`(?i)aws_secret_access_key\s*[:=]\s*["']?[A-Za-z0-9/+=]{40}`)
)

// AWSAccessKey matches access key IDs: AKIA + 16 uppercase alphanumerics.
var AWSAccessKey = Detector{
	ID:       "aws_access_key",
	Name:     "AWS Access Key",
	Severity: types.SevCritical,
	Pattern:  reAWSAccess,
}

// AWSSecretKey matches assignments of aws_secret_access_key to a 40-char
// base64-alphabet value.
var AWSSecretKey = Detector{
	ID:       "aws_secret_key",
	Name:     "AWS Secret Key",
	Severity: types.SevCritical,
	Pattern:  reAWSSecret,
}
