package engine

import (
	"testing"

	"github.com/leakhound/leakhound/internal/detectors"
)

func TestIsCommentLine(t *testing.T) {
	for _, line := range []string{"// note", "  # config", "\t* bullet", "#!shebang"} {
		if !isCommentLine(line) {
			t.Fatalf("expected comment: %q", line)
		}
	}
	for _, line := range []string{"host = 1.2.3.4", "  x // trailing", ""} {
		if isCommentLine(line) {
			t.Fatalf("did not expect comment: %q", line)
		}
	}
}

func TestSuppressed_CommentOnlyAffectsLow(t *testing.T) {
	if !suppressed(detectors.PrivateIP, "# 10.0.0.1", "10.0.0.1") {
		t.Fatal("low-severity match in comment should be suppressed")
	}
	if suppressed(detectors.AWSAccessKey, "# AKIA1234567890ABCDEF", "AKIA1234567890ABCDEF") {
		t.Fatal("critical match in comment must survive")
	}
}

func TestLikelyRealEmail(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		match string
		want  bool
	}{
		{"public provider", "contact me at jane@gmail.com", "jane@gmail.com", true},
		{"explicit indicator", "email: ops@bigcorp.example", "ops@bigcorp.example", true},
		{"mailto", "mailto: sam@bigcorp.example", "sam@bigcorp.example", true},
		// no space after the colon makes it look like userinfo; rejects run first
		{"mailto glued", "mailto:sam@bigcorp.example", "sam@bigcorp.example", false},
		{"recipient keyword", "recipient sam@bigcorp.example", "sam@bigcorp.example", true},
		{"mongodb context", "mongodb://u:p@host/db jane@gmail.com", "jane@gmail.com", false},
		{"uri scheme", "see https://x.test jane@gmail.com", "jane@gmail.com", false},
		{"cluster keyword", "cluster0 admin jane@gmail.com", "jane@gmail.com", false},
		{"credential embedded", "user:pass@db.internal", "pass@db.internal", false},
		{"no indicator", "jane.doe@bigcorp.example", "jane.doe@bigcorp.example", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := likelyRealEmail(tt.line, tt.match); got != tt.want {
				t.Fatalf("likelyRealEmail(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
