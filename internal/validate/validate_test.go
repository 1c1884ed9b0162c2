package validate

import (
	"bytes"
	"testing"
)

func TestTextSize(t *testing.T) {
	data := []byte("0123456789")
	if err := TextSize(data, 10); err != nil {
		t.Fatalf("at the limit should pass: %v", err)
	}
	if err := TextSize(data, 9); err == nil {
		t.Fatal("over the limit should fail")
	}
	if err := TextSize(data, 0); err != nil {
		t.Fatalf("0 disables the guard: %v", err)
	}
	if err := TextSize(data, -1); err != nil {
		t.Fatalf("negative disables the guard: %v", err)
	}
}

func TestIsBinary(t *testing.T) {
	if IsBinary([]byte("plain text\nwith lines\n")) {
		t.Fatal("text flagged as binary")
	}
	if !IsBinary([]byte{'a', 0, 'b'}) {
		t.Fatal("NUL not detected")
	}
	// NUL beyond the sniff window is not seen
	data := append(bytes.Repeat([]byte{'x'}, 900), 0)
	if IsBinary(data) {
		t.Fatal("sniff window should stop at 800 bytes")
	}
}

func TestDecodeText(t *testing.T) {
	s, err := DecodeText([]byte("héllo"))
	if err != nil {
		t.Fatal(err)
	}
	if s != "héllo" {
		t.Fatalf("got %q", s)
	}

	if _, err := DecodeText([]byte{0xff, 0xfe, 0x00}); err == nil {
		t.Fatal("binary should be rejected")
	}
	if _, err := DecodeText([]byte{'a', 0xff, 'b'}); err == nil {
		t.Fatal("invalid UTF-8 should be rejected")
	}
}
