package detectors

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

var reMongoURI = regexp.MustCompile(`mongodb(\+srv)?://[^\s]+`)

// MongoURI matches any mongodb:// or mongodb+srv:// URI. Connection strings
// usually embed credentials, so the whole URI is treated as sensitive.
var MongoURI = Detector{
	ID:       "mongodb_uri",
	Name:     "MongoDB Connection String",
	Severity: types.SevCritical,
	Pattern:  reMongoURI,
}
