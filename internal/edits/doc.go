// Package edits generates typo candidates: the strings reachable from a base
// word by one or two rounds of single-rune deletion, adjacent transposition,
// substitution and insertion over a caller-supplied alphabet.
package edits
