// Package redact rewrites text in place, replacing every detector match
// with a severity-free placeholder so the output is safe to share.
package redact

import (
	"fmt"
	"os"
	"strings"

	"github.com/leakhound/leakhound/internal/detectors"
	"github.com/leakhound/leakhound/internal/types"
)

// Redaction records one replaced match. Values are never retained.
type Redaction struct {
	Name           string         `json:"name"`
	Severity       types.Severity `json:"severity"`
	OriginalLength int            `json:"original_length"`
}

// Placeholder returns the replacement token for a detector.
func Placeholder(name string) string {
	return "[REDACTED " + strings.ToUpper(name) + "]"
}

// Text replaces all detector matches in text, in registry order. Detectors
// run sequentially, so a placeholder inserted by an earlier detector is
// visible to later ones; placeholders contain no matchable material.
func Text(text string) (string, []Redaction) {
	var applied []Redaction
	for _, d := range detectors.All() {
		matches := d.Pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		for _, m := range matches {
			applied = append(applied, Redaction{
				Name:           d.Name,
				Severity:       d.Severity,
				OriginalLength: len([]rune(m)),
			})
		}
		text = d.Pattern.ReplaceAllString(text, Placeholder(d.Name))
	}
	return text, applied
}

// File redacts a file on disk, rewriting it only when something matched.
func File(path string) (bool, int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return false, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	out, applied := Text(string(b))
	if len(applied) == 0 {
		return false, 0, nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return false, 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, len(applied), nil
}
