package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

// RFC1918 ranges only: 10/8, 172.16/12, 192.168/16. Public addresses are
// not sensitive on their own.
var rePrivateIP = regexp.MustCompile(`\b(10\.\d{1,3}\.\d{1,3}\.\d{1,3}|172\.(1[6-9]|2\d|3[01])\.\d{1,3}\.\d{1,3}|192\.168\.\d{1,3}\.\d{1,3})\b`)

var PrivateIP = Detector{
	ID:       "private_ip",
	Name:     "Private IP Address",
	Severity: types.SevLow,
	Pattern:  rePrivateIP,
}
