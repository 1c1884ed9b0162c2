package leakhound

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the CLI as a subprocess to keep os.Exit out of the test
// process. Returns stdout and the exit code.
func run(t *testing.T, configHome string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+configHome, "HOME="+configHome)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return out.String(), 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return out.String(), ee.ExitCode()
	}
	t.Fatalf("execute: %v", err)
	return "", 0
}

func TestCLI_ScanText_JSON_ExitCode(t *testing.T) {
	out, code := run(t, t.TempDir(),
		"scan", "--json", "--no-history", "--text", "AKIA1234567890ABCDEF")
	if code != 1 {
		t.Fatalf("expected exit 1 on a critical finding, got %d", code)
	}
	var results []map[string]any
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if got := results[0]["total_found"].(float64); got != 1 {
		t.Fatalf("expected total_found 1, got %v", got)
	}
}

func TestCLI_ScanDir_Clean(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("nothing sensitive\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, code := run(t, t.TempDir(), "scan", "--json", "--no-history", dir)
	if code != 0 {
		t.Fatalf("expected exit 0 for a clean tree, got %d\n%s", code, out)
	}
}

func TestCLI_FailOnThreshold(t *testing.T) {
	// a low finding does not trip the default (high) threshold
	_, code := run(t, t.TempDir(),
		"scan", "--json", "--no-history", "--text", "host = 10.0.0.1")
	if code != 0 {
		t.Fatalf("expected exit 0 below threshold, got %d", code)
	}
	_, code = run(t, t.TempDir(),
		"scan", "--json", "--no-history", "--fail-on", "low", "--text", "host = 10.0.0.1")
	if code != 1 {
		t.Fatalf("expected exit 1 at --fail-on low, got %d", code)
	}
}

func TestCLI_StdinRespectsMaxBytes(t *testing.T) {
	// `go run` always exits 1 when the program fails, so build the binary
	// and exec it directly to observe the CLI's real exit code.
	bin := filepath.Join(t.TempDir(), "leakhound")
	build := exec.Command("go", "build", "-o", bin, ".")
	build.Dir = filepath.Clean(filepath.Join("..", ".."))
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("build: %v\n%s", err, out)
	}

	cmd := exec.Command(bin, "scan", "--no-history", "--max-bytes", "8")
	home := t.TempDir()
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+home, "HOME="+home)
	cmd.Stdin = strings.NewReader("password = \"hunter2!\"\n")
	err := cmd.Run()
	var ee *exec.ExitError
	if !errors.As(err, &ee) || ee.ExitCode() != 2 {
		t.Fatalf("expected exit 2 for oversized stdin, got %v", err)
	}

	// within the limit, stdin scans normally
	cmd = exec.Command(bin, "scan", "--json", "--no-history")
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+home, "HOME="+home)
	cmd.Stdin = strings.NewReader("password = \"hunter2!\"\n")
	var out bytes.Buffer
	cmd.Stdout = &out
	err = cmd.Run()
	if !errors.As(err, &ee) || ee.ExitCode() != 1 {
		t.Fatalf("expected exit 1 on a high finding, got %v", err)
	}
	var results []map[string]any
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out.String())
	}
	if len(results) != 1 || results[0]["label"] != "stdin" {
		t.Fatalf("expected one stdin-labeled result, got %v", results)
	}
}

func TestCLI_Detectors(t *testing.T) {
	out, code := run(t, t.TempDir(), "detectors", "--json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var ds []map[string]any
	if err := json.Unmarshal([]byte(out), &ds); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(ds) != 14 {
		t.Fatalf("expected 14 detectors, got %d", len(ds))
	}
}

func TestCLI_HistoryRoundTrip(t *testing.T) {
	home := t.TempDir()
	_, code := run(t, home, "scan", "--text", "AKIA1234567890ABCDEF", "--label", "paste")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	out, code := run(t, home, "history", "--json")
	if code != 0 {
		t.Fatalf("history exit %d", code)
	}
	var records []map[string]any
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(records) != 1 {
		t.Fatalf("expected one history record, got %d", len(records))
	}
	if records[0]["label"] != "paste" {
		t.Fatalf("expected label carried into history, got %v", records[0]["label"])
	}
}
