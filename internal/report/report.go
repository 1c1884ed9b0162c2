package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/leakhound/leakhound/internal/types"
)

// Tally counts findings by severity. All four severities are always present
// in the result, zero-filled when absent.
func Tally(findings []types.Finding) map[types.Severity]int {
	counts := make(map[types.Severity]int, 4)
	for _, s := range types.Levels() {
		counts[s] = 0
	}
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}

// Render builds the plain-text scan report: a generation timestamp, the
// total, the four severity counts, and one line per finding. It is a pure
// read-only projection: findings are never mutated or reordered. The
// timestamp is injected so output is reproducible.
func Render(findings []types.Finding, counts map[types.Severity]int, label string, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("Secret Scan Report\n")
	if label != "" {
		fmt.Fprintf(&b, "Target: %s\n", label)
	}
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Total Findings: %d\n", len(findings))
	fmt.Fprintf(&b, "Critical: %d  High: %d  Medium: %d  Low: %d\n",
		counts[types.SevCritical], counts[types.SevHigh], counts[types.SevMed], counts[types.SevLow])
	if len(findings) == 0 {
		b.WriteString("\nNo secrets or sensitive data detected.\n")
		return b.String()
	}
	b.WriteString("\n")
	for _, f := range findings {
		fmt.Fprintf(&b, "[%s] %s at line %d: %s\n",
			strings.ToUpper(string(f.Severity)), f.Name, f.Line, f.Value)
	}
	return b.String()
}

// ShouldFail reports whether any finding is at or above the fail-on
// threshold. Unknown thresholds default to high.
func ShouldFail(findings []types.Finding, failOn string) bool {
	th := types.Rank(types.Severity(failOn))
	if th == 0 {
		th = types.Rank(types.SevHigh)
	}
	for _, f := range findings {
		if types.Rank(f.Severity) >= th {
			return true
		}
	}
	return false
}
