package core

import (
	"github.com/leakhound/leakhound/internal/detectors"
	"github.com/leakhound/leakhound/internal/engine"
	"github.com/leakhound/leakhound/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Finding = types.Finding
type ScanResult = types.ScanResult
type Severity = types.Severity
type Position = types.Position

const (
	SeverityCritical = types.SevCritical
	SeverityHigh     = types.SevHigh
	SeverityMedium   = types.SevMed
	SeverityLow      = types.SevLow
)

// Scan runs every detector over text and returns the full result, report
// included.
func Scan(text string) ScanResult {
	return engine.Scan(text, "")
}

// ScanNamed is Scan with a label carried into the result and its report,
// typically a file name.
func ScanNamed(text, label string) ScanResult {
	return engine.Scan(text, label)
}

// DetectorInfo describes one registry entry without exposing its pattern.
type DetectorInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
}

// Detectors lists the registry in its fixed scan order.
func Detectors() []DetectorInfo {
	all := detectors.All()
	out := make([]DetectorInfo, 0, len(all))
	for _, d := range all {
		out = append(out, DetectorInfo{ID: d.ID, Name: d.Name, Severity: d.Severity})
	}
	return out
}
