package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkFiles_SkipsBinaryAndExcluded(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.env", []byte("password = \"hunter2!\"\n"))
	writeFile(t, dir, "logo.png", []byte{0x89, 'P', 'N', 'G', 0, 0})
	writeFile(t, dir, "node_modules/pkg/index.js", []byte("AKIA1234567890ABCDEF"))

	var seen []string
	err := WalkFiles(WalkConfig{Root: dir, DefaultExcludes: true}, func(rel, text string) {
		seen = append(seen, rel)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 || seen[0] != "app.env" {
		t.Fatalf("expected only app.env, got %v", seen)
	}
}

func TestWalkFiles_Globs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", []byte("x"))
	writeFile(t, dir, "b.txt", []byte("y"))
	writeFile(t, dir, "sub/c.go", []byte("z"))

	var seen []string
	err := WalkFiles(WalkConfig{Root: dir, IncludeGlobs: "**/*.go"}, func(rel, text string) {
		seen = append(seen, filepath.ToSlash(rel))
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 go files, got %v", seen)
	}
}

func TestWalkFiles_MaxBytes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.txt", []byte("0123456789abcdef"))
	writeFile(t, dir, "small.txt", []byte("ok"))

	var seen []string
	err := WalkFiles(WalkConfig{Root: dir, MaxBytes: 8}, func(rel, text string) {
		seen = append(seen, rel)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 || seen[0] != "small.txt" {
		t.Fatalf("expected only small.txt, got %v", seen)
	}
}
