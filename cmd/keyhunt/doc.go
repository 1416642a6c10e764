// Package keyhunt provides the command-line interface for keyhunt. It wires
// the solve pipeline and its helper subcommands (key, typo, neighbors, config)
// to flags and config files.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/keyhunt/keyhunt/cmd/keyhunt"
//	func main() { keyhunt.Execute() }
package keyhunt
