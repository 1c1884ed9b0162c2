package engine

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/leakhound/leakhound/internal/detectors"
	"github.com/leakhound/leakhound/internal/report"
	"github.com/leakhound/leakhound/internal/types"
)

// maxDisplayLen bounds the displayed finding value. Truncation is
// display-only: positions and entropy always use the full match.
const maxDisplayLen = 50

// Options subsets the detector registry for a scan. The zero value runs the
// full registry.
type Options struct {
	Enable  string // comma-separated detector IDs; empty = all
	Disable string // comma-separated detector IDs
}

// Scan runs the full registry over text and returns a complete result.
// label is carried through to the result (e.g. an originating filename) and
// does not affect detection. The function is total over any string input:
// empty or whitespace-only text is a normal input with zero findings.
func Scan(text, label string) types.ScanResult {
	return ScanWith(Options{}, text, label)
}

// ScanWith is Scan with an enable/disable subset of the registry. Scans hold
// no state between calls; concurrent scans on independent inputs are safe.
func ScanWith(opts Options, text, label string) types.ScanResult {
	regs := detectors.Subset(opts.Enable, opts.Disable)
	findings := scanLines(regs, text)
	counts := report.Tally(findings)
	return types.ScanResult{
		Label:          label,
		TotalFound:     len(findings),
		SeverityCounts: counts,
		Findings:       findings,
		Report:         report.Render(findings, counts, label, time.Now()),
	}
}

// scanLines walks the input line by line, applying every detector in
// registry order and the false-positive filter to each raw match. Findings
// accumulate in discovery order.
func scanLines(regs []detectors.Detector, text string) []types.Finding {
	findings := []types.Finding{}
	for i, line := range strings.Split(text, "\n") {
		for _, d := range regs {
			for _, span := range matchLine(d, line) {
				match := line[span[0]:span[1]]
				if suppressed(d, line, match) {
					continue
				}
				start := utf8.RuneCountInString(line[:span[0]]) + 1
				findings = append(findings, types.Finding{
					Name:     d.Name,
					Value:    displayValue(match),
					Severity: d.Severity,
					Line:     i + 1,
					Position: types.Position{
						Start: start,
						End:   start + utf8.RuneCountInString(match),
					},
					Entropy: detectors.Entropy(match),
				})
			}
		}
	}
	return findings
}

// matchLine isolates a single detector evaluation so a misbehaving pattern
// cannot abort the scan: its failure is logged and the scan continues with
// the remaining detectors.
func matchLine(d detectors.Detector, line string) (spans [][]int) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("detector", d.ID).Warnf("detector failed, skipping line: %v", r)
			spans = nil
		}
	}()
	return d.Matches(line)
}

func displayValue(match string) string {
	if utf8.RuneCountInString(match) <= maxDisplayLen {
		return match
	}
	return string([]rune(match)[:maxDisplayLen-3]) + "..."
}
