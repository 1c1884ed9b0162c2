package leakhound

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakhound/leakhound/internal/redact"
)

var flagRedactText string

func init() {
	cmd := &cobra.Command{
		Use:   "redact [file...]",
		Short: "Replace detector matches with placeholders",
		Long:  "Redact rewrites files in place (or --text to stdout), replacing every detector match with a [REDACTED ...] placeholder.",
		RunE:  runRedact,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagRedactText, "text", "", "redact this literal text and print the result")
}

func runRedact(_ *cobra.Command, args []string) error {
	if flagRedactText != "" {
		out, applied := redact.Text(flagRedactText)
		fmt.Println(out)
		fmt.Fprintf(os.Stderr, "redacted %d match(es)\n", len(applied))
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("nothing to redact: pass files or --text")
	}
	for _, p := range args {
		changed, n, err := redact.File(p)
		if err != nil {
			return err
		}
		if changed {
			fmt.Printf("%s: redacted %d match(es)\n", p, n)
		} else {
			fmt.Printf("%s: clean\n", p)
		}
	}
	return nil
}
