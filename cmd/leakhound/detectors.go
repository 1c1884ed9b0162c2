package leakhound

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakhound/leakhound/pkg/core"
)

func init() {
	cmd := &cobra.Command{
		Use:   "detectors",
		Short: "List available detectors",
		RunE: func(_ *cobra.Command, _ []string) error {
			ds := core.Detectors()
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(ds)
			}
			for _, d := range ds {
				fmt.Printf("%-18s %-28s %s\n", d.ID, d.Name, d.Severity)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
