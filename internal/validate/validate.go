package validate

import (
	"fmt"
	"unicode/utf8"
)

// Input guards applied by callers before invoking the engine. The engine
// assumes it always receives decoded text; rejecting binary or oversized
// input is the caller's responsibility and happens here, before scanning
// begins.

// TextSize rejects input larger than max bytes. max <= 0 disables the guard.
func TextSize(data []byte, max int64) error {
	if max > 0 && int64(len(data)) > max {
		return fmt.Errorf("input too large: %d bytes (limit %d)", len(data), max)
	}
	return nil
}

// IsBinary sniffs the first 800 bytes for NUL, the cheap signal that content
// is not text.
func IsBinary(data []byte) bool {
	n := len(data)
	if n > 800 {
		n = 800
	}
	for i := 0; i < n; i++ {
		if data[i] == 0 {
			return true
		}
	}
	return false
}

// DecodeText converts file bytes to the text the engine scans, rejecting
// binary and invalid UTF-8 content.
func DecodeText(data []byte) (string, error) {
	if IsBinary(data) {
		return "", fmt.Errorf("content is binary, not text")
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("content is not valid UTF-8")
	}
	return string(data), nil
}
