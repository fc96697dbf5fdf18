// Package secretscan provides the command-line interface for the secrets
// scanner. The root command runs the scan; subcommands list detectors,
// install the pre-commit hook and print the version.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/secretscan/cmd/secretscan"
//	func main() { secretscan.Execute() }
package secretscan
