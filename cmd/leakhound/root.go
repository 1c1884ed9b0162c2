package leakhound

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagJSON    bool
	flagNoColor bool
	flagFailOn  string
	flagVerbose bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Leakhound CLI.
var rootCmd = &cobra.Command{
	Use:           "leakhound",
	Short:         "Find secrets and sensitive data in text and files",
	Long:          "Leakhound scans text, files or directory trees against a fixed detector registry and reports findings with severity and entropy metadata.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the Leakhound CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit nonzero on findings at or above low|medium|high|critical (default high)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

// colorDisabled merges the flag with TTY detection: piping output always
// strips color.
func colorDisabled() bool {
	return flagNoColor || !term.IsTerminal(int(os.Stdout.Fd()))
}
