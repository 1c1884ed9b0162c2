// Package audit keeps an append-only scan history as JSON lines. Records
// carry finding metadata only, never the matched values.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/leakhound/leakhound/internal/types"
)

// FindingSummary is the value-free projection of a finding stored in history.
type FindingSummary struct {
	Name     string         `json:"name"`
	Severity types.Severity `json:"severity"`
	Line     int            `json:"line"`
}

// ScanRecord is one line of the history file.
type ScanRecord struct {
	Timestamp      time.Time        `json:"timestamp"`
	ScanID         string           `json:"scan_id"`
	ScanType       string           `json:"scan_type"` // "text" or "file"
	Label          string           `json:"label,omitempty"`
	TotalFound     int              `json:"total_found"`
	SeverityCounts map[string]int   `json:"severity_counts"`
	Findings       []FindingSummary `json:"findings"`
}

// Log is a JSONL file of ScanRecords.
type Log struct {
	path string
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

// DefaultPath places the history under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "leakhound", "history.jsonl"), nil
}

// NewRecord builds a history record from a scan result. The scan ID hashes
// the label and timestamp, not the content, so identical inputs scanned at
// different times get distinct IDs.
func NewRecord(res types.ScanResult, scanType string, at time.Time) ScanRecord {
	h := xxhash.New()
	h.WriteString(res.Label)
	h.WriteString(at.UTC().Format(time.RFC3339Nano))
	rec := ScanRecord{
		Timestamp:      at.UTC(),
		ScanID:         fmt.Sprintf("%016x", h.Sum64()),
		ScanType:       scanType,
		Label:          res.Label,
		TotalFound:     res.TotalFound,
		SeverityCounts: make(map[string]int, len(res.SeverityCounts)),
	}
	for s, n := range res.SeverityCounts {
		rec.SeverityCounts[string(s)] = n
	}
	for _, f := range res.Findings {
		rec.Findings = append(rec.Findings, FindingSummary{Name: f.Name, Severity: f.Severity, Line: f.Line})
	}
	return rec
}

// Append writes one record to the end of the log, creating the file and its
// parent directory as needed.
func (l *Log) Append(rec ScanRecord) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("appending history: %w", err)
	}
	return nil
}

// LoadHistory reads all records, newest first. Unparseable lines are
// skipped rather than failing the whole read. A missing file is an empty
// history, not an error.
func (l *Log) LoadHistory() ([]ScanRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var records []ScanRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		var rec ScanRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// Statistics aggregates a history.
type Statistics struct {
	TotalScans        int            `json:"total_scans"`
	TotalSecretsFound int            `json:"total_secrets_found"`
	ScansByType       map[string]int `json:"scans_by_type"`
	SeverityBreakdown map[string]int `json:"severity_breakdown"`
}

// Stats tallies records into aggregate counters.
func Stats(records []ScanRecord) Statistics {
	st := Statistics{
		ScansByType:       map[string]int{},
		SeverityBreakdown: map[string]int{},
	}
	for _, rec := range records {
		st.TotalScans++
		st.TotalSecretsFound += rec.TotalFound
		st.ScansByType[rec.ScanType]++
		for sev, n := range rec.SeverityCounts {
			st.SeverityBreakdown[sev] += n
		}
	}
	return st
}
