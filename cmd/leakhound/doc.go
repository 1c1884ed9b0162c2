// Package leakhound provides the command-line interface for the Leakhound
// tool. It configures subcommands (scan, redact, detectors, history, stats),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/leakhound/leakhound/cmd/leakhound"
//	func main() { leakhound.Execute() }
package leakhound
