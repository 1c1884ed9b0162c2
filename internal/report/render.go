package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/leakhound/leakhound/internal/types"
)

// PrintOptions controls terminal rendering of a scan result.
type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
}

var severityStyles = map[types.Severity]lipgloss.Style{
	types.SevCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	types.SevHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	types.SevMed:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	types.SevLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// PrintTable renders findings as a bordered table with a summary footer.
// Secret values are masked; the full value only appears in the JSON output
// and the text report.
func PrintTable(w io.Writer, res types.ScanResult, opts PrintOptions) {
	if res.TotalFound == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
	} else {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"SEVERITY", "FINDING", "LINE", "POSITION", "ENTROPY", "VALUE"})
		table.SetAutoWrapText(false)
		for _, f := range res.Findings {
			sev := string(f.Severity)
			if !opts.NoColor {
				sev = severityStyles[f.Severity].Render(sev)
			}
			table.Append([]string{
				sev,
				f.Name,
				fmt.Sprintf("%d", f.Line),
				fmt.Sprintf("%d-%d", f.Position.Start, f.Position.End),
				fmt.Sprintf("%.2f", f.Entropy),
				MaskValue(f.Value),
			})
		}
		table.Render()
	}
	fmt.Fprintf(w, "\nFindings: %d (critical: %d, high: %d, medium: %d, low: %d)\n",
		res.TotalFound,
		res.SeverityCounts[types.SevCritical],
		res.SeverityCounts[types.SevHigh],
		res.SeverityCounts[types.SevMed],
		res.SeverityCounts[types.SevLow])
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// MaskValue hides the middle of a secret for terminal display.
func MaskValue(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
