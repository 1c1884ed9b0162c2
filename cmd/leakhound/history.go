package leakhound

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/leakhound/leakhound/internal/audit"
)

var flagHistoryLimit int

func init() {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scans, newest first",
		RunE:  runHistory,
	}
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "show at most this many records")
	rootCmd.AddCommand(historyCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate statistics over all recorded scans",
		RunE:  runStats,
	}
	rootCmd.AddCommand(statsCmd)
}

func loadHistory() ([]audit.ScanRecord, error) {
	path, err := audit.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("no history location: %w", err)
	}
	return audit.NewLog(path).LoadHistory()
}

func runHistory(_ *cobra.Command, _ []string) error {
	records, err := loadHistory()
	if err != nil {
		return err
	}
	if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
		records = records[:flagHistoryLimit]
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	if len(records) == 0 {
		fmt.Println("No scans recorded yet.")
		return nil
	}
	for _, rec := range records {
		label := rec.Label
		if label == "" {
			label = "-"
		}
		fmt.Printf("%s  %s  %-4s  %-30s  %d finding(s)\n",
			rec.Timestamp.Local().Format(time.RFC3339), rec.ScanID, rec.ScanType, label, rec.TotalFound)
	}
	return nil
}

func runStats(_ *cobra.Command, _ []string) error {
	records, err := loadHistory()
	if err != nil {
		return err
	}
	st := audit.Stats(records)
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}
	fmt.Printf("Total scans:         %d\n", st.TotalScans)
	fmt.Printf("Total secrets found: %d\n", st.TotalSecretsFound)
	fmt.Printf("Scans by type:       text=%d file=%d\n", st.ScansByType["text"], st.ScansByType["file"])
	fmt.Printf("By severity:         critical=%d high=%d medium=%d low=%d\n",
		st.SeverityBreakdown["critical"], st.SeverityBreakdown["high"],
		st.SeverityBreakdown["medium"], st.SeverityBreakdown["low"])
	return nil
}
