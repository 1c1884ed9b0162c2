package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

var rePrivateKey = regexp.MustCompile(`-----BEGIN (RSA |DSA |EC |OPENSSH )?PRIVATE KEY-----`)

// PrivateKeyBlock matches PEM private key headers. The header alone is
// enough: the body never appears without it.
var PrivateKeyBlock = Detector{
	ID:       "private_key",
	Name:     "Private Key",
	Severity: types.SevCritical,
	Pattern:  rePrivateKey,
}
