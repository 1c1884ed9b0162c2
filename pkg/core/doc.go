// Package core provides a small, stable facade over Leakhound's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other programs can depend on a stable import path without
// reaching into internal packages.
//
// Example:
//
//	res := core.Scan("password = \"hunter2!\"")
//	fmt.Println(res.TotalFound)
//	_ = core.MarshalResult(os.Stdout, res)
package core
