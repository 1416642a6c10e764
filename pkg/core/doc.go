// Package core provides a small, stable facade over keyhunt's internal
// pipeline for programs that embed the solver. It re-exports a narrow API
// surface so callers can depend on a stable import path without importing
// internal implementation packages.
//
// Example:
//
//	res, err := core.Solve(ctx, core.Config{Input: "puzzle.txt"})
//	if err != nil { /* handle */ }
//	_ = core.MarshalResult(os.Stdout, res)
package core
