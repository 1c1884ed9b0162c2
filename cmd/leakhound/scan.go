package leakhound

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leakhound/leakhound/internal/audit"
	"github.com/leakhound/leakhound/internal/config"
	"github.com/leakhound/leakhound/internal/engine"
	"github.com/leakhound/leakhound/internal/report"
	"github.com/leakhound/leakhound/internal/types"
	"github.com/leakhound/leakhound/internal/validate"
)

var (
	flagScanText        string
	flagLabel           string
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagEnable          string
	flagDisable         string
	flagReport          bool
	flagNoHistory       bool
	flagDefaultExcludes bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [path...]",
		Short: "Scan text, files or directories for secrets",
		Long:  "Scan reads the given paths (or --text, or stdin when neither is present) and reports every detector match that survives false-positive filtering.",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagScanText, "text", "", "scan this literal text instead of paths")
	cmd.Flags().StringVar(&flagLabel, "label", "", "label carried into the result and report")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these detectors (comma-separated IDs)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these detectors (comma-separated IDs)")
	cmd.Flags().BoolVar(&flagReport, "report", false, "print the plain-text report instead of the table")
	cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "do not record this scan in history")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, lockfiles, images, etc.)")
}

func runScan(_ *cobra.Command, args []string) error {
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	if abs, err := filepath.Abs(root); err == nil {
		if c, err := config.LoadLocal(abs); err == nil {
			lcfg = c
		}
	}

	opts := engine.Options{
		Enable:  pickString(flagEnable, lcfg.Enable, gcfg.Enable),
		Disable: pickString(flagDisable, lcfg.Disable, gcfg.Disable),
	}
	walkCfg := engine.WalkConfig{
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		DefaultExcludes: flagDefaultExcludes,
	}
	noColor := pickBool(colorDisabled(), lcfg.NoColor, gcfg.NoColor)
	failOn := pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn)
	noHistory := pickBool(flagNoHistory, lcfg.NoHistory, gcfg.NoHistory)

	start := time.Now()
	var results []types.ScanResult
	scanType := "file"

	switch {
	case flagScanText != "":
		scanType = "text"
		label := flagLabel
		if label == "" {
			label = "text"
		}
		results = append(results, engine.ScanWith(opts, flagScanText, label))
	case len(args) > 0:
		for _, p := range args {
			rs, err := scanPath(p, opts, walkCfg)
			if err != nil {
				return err
			}
			results = append(results, rs...)
		}
	default:
		scanType = "text"
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if err := validate.TextSize(b, walkCfg.MaxBytes); err != nil {
			return err
		}
		text, err := validate.DecodeText(b)
		if err != nil {
			return err
		}
		label := flagLabel
		if label == "" {
			label = "stdin"
		}
		results = append(results, engine.ScanWith(opts, text, label))
	}

	if !noHistory {
		recordHistory(results, scanType)
	}

	var all []types.Finding
	for _, res := range results {
		all = append(all, res.Findings...)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if flagReport {
				fmt.Print(res.Report)
				continue
			}
			if res.Label != "" && len(results) > 1 {
				fmt.Printf("== %s ==\n", res.Label)
			}
			report.PrintTable(os.Stdout, res, report.PrintOptions{NoColor: noColor, Duration: time.Since(start)})
		}
	}

	if report.ShouldFail(all, failOn) {
		os.Exit(1)
	}
	return nil
}

// scanPath scans a single file, or every eligible file under a directory.
func scanPath(p string, opts engine.Options, walkCfg engine.WalkConfig) ([]types.ScanResult, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}
	if !info.IsDir() {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if err := validate.TextSize(b, walkCfg.MaxBytes); err != nil {
			return nil, err
		}
		text, err := validate.DecodeText(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		return []types.ScanResult{engine.ScanWith(opts, text, p)}, nil
	}

	var results []types.ScanResult
	walkCfg.Root = p
	err = engine.WalkFiles(walkCfg, func(rel, text string) {
		res := engine.ScanWith(opts, text, rel)
		if res.TotalFound > 0 {
			results = append(results, res)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", p, err)
	}
	return results, nil
}

// recordHistory appends one record per result. History failures never fail
// the scan.
func recordHistory(results []types.ScanResult, scanType string) {
	path, err := audit.DefaultPath()
	if err != nil {
		logrus.WithError(err).Debug("history disabled: no config dir")
		return
	}
	log := audit.NewLog(path)
	now := time.Now()
	for _, res := range results {
		if err := log.Append(audit.NewRecord(res, scanType, now)); err != nil {
			logrus.WithError(err).Warn("could not record scan history")
			return
		}
	}
}
