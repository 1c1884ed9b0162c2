package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leakhound/leakhound/internal/types"
)

func TestPrintTable(t *testing.T) {
	res := types.ScanResult{
		TotalFound: 2,
		SeverityCounts: map[types.Severity]int{
			types.SevCritical: 1, types.SevHigh: 0, types.SevMed: 0, types.SevLow: 1,
		},
		Findings: sampleFindings(),
	}
	var buf bytes.Buffer
	PrintTable(&buf, res, PrintOptions{NoColor: true, Duration: 1234 * time.Millisecond})
	out := buf.String()

	assert.Contains(t, out, "SEVERITY")
	assert.Contains(t, out, "AWS Access Key")
	assert.Contains(t, out, "1-21")
	assert.Contains(t, out, "3.68")
	assert.Contains(t, out, "Findings: 2 (critical: 1, high: 0, medium: 0, low: 1)")
	assert.Contains(t, out, "Scan duration: 1.23s")

	// values are masked on the terminal
	assert.NotContains(t, out, "AKIA1234567890ABCDEF")
	assert.Contains(t, out, MaskValue("AKIA1234567890ABCDEF"))
}

func TestPrintTable_Empty(t *testing.T) {
	res := types.ScanResult{SeverityCounts: Tally(nil)}
	var buf bytes.Buffer
	PrintTable(&buf, res, PrintOptions{NoColor: true})
	out := buf.String()
	assert.Contains(t, out, "No secrets found")
	assert.Contains(t, out, "Findings: 0")
	assert.NotContains(t, out, "Scan duration")
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "********", MaskValue("short"))
	assert.Equal(t, "********", MaskValue(""))
	masked := MaskValue("AKIA1234567890ABCDEF")
	assert.True(t, strings.HasPrefix(masked, "AKIA"))
	assert.True(t, strings.HasSuffix(masked, "CDEF"))
	assert.NotContains(t, masked, "1234567890")
}
