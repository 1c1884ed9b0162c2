package core_test

import (
	"fmt"
	"os"

	"github.com/leakhound/leakhound/pkg/core"
)

// ExampleScan demonstrates scanning a string and reading the findings.
func ExampleScan() {
	res := core.Scan(`db_password = "sup3rs3cret"`)

	if res.TotalFound == 0 {
		fmt.Println("No secrets found.")
		return
	}
	for _, f := range res.Findings {
		fmt.Printf("%s (%s) at line %d\n", f.Name, f.Severity, f.Line)
	}
	// Full result, report included, as JSON:
	_ = core.MarshalResult(os.Stdout, res)
}

// ExampleDetectors lists what the registry can find.
func ExampleDetectors() {
	for _, d := range core.Detectors() {
		fmt.Printf("%-20s %-30s %s\n", d.ID, d.Name, d.Severity)
	}
}
