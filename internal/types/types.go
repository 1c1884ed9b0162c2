package types

// Severity is a coarse-grained risk level for a finding. Every detector
// declares exactly one of these constants; there is no fallback level.
type Severity string

const (
	SevCritical Severity = "critical"
	SevHigh     Severity = "high"
	SevMed      Severity = "medium"
	SevLow      Severity = "low"
)

// Levels lists all severities from most to least severe.
func Levels() []Severity {
	return []Severity{SevCritical, SevHigh, SevMed, SevLow}
}

// Rank orders severities for threshold comparisons: low=1 .. critical=4.
// Unknown values rank 0 and never trip a threshold.
func Rank(s Severity) int {
	switch s {
	case SevLow:
		return 1
	case SevMed:
		return 2
	case SevHigh:
		return 3
	case SevCritical:
		return 4
	}
	return 0
}

// Position is a 1-based character span within a line. Offsets count runes,
// not bytes; End is one past the last character of the match.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Finding is one accepted match of a detector against a line of input.
// Findings are immutable after creation. Value is bounded for display;
// Entropy is always computed over the full matched text.
type Finding struct {
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Severity Severity `json:"severity"`
	Line     int      `json:"line"`
	Position Position `json:"position"`
	Entropy  float64  `json:"entropy"`
}

// ScanResult is the complete output of one scan invocation. SeverityCounts
// always carries all four severities, zero-filled, and Findings keeps
// discovery order (line, then registry order, then match order).
type ScanResult struct {
	Label          string           `json:"label,omitempty"`
	TotalFound     int              `json:"total_found"`
	SeverityCounts map[Severity]int `json:"severity_counts"`
	Findings       []Finding        `json:"findings"`
	Report         string           `json:"report"`
}
