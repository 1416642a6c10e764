package types

// Key is a zero-padded decimal key candidate, e.g. "049677629".
type Key string

// Status describes how a digest in the decoded message was resolved.
type Status string

const (
	StatusDecoded Status = "decoded"
	StatusTypo    Status = "typo"
	StatusUnknown Status = "unknown"
)

// Placeholder is emitted for digests that have no dictionary match.
const Placeholder = "UNKNOWN"

// TypoResolution pairs an unresolved digest with the corrupted string that
// produced it and the dictionary word it was derived from. Suffix is set when
// the match needed a trailing punctuation mark.
type TypoResolution struct {
	Digest    string `json:"digest"`
	Corrupted string `json:"corrupted"`
	Intended  string `json:"intended"`
	Suffix    string `json:"suffix,omitempty"`
	Depth     int    `json:"depth"`
}

// Token is one position of a decoded message.
type Token struct {
	Digest   string `json:"digest"`
	Word     string `json:"word"`
	Intended string `json:"intended,omitempty"` // Source word when Status is typo
	Status   Status `json:"status"`
}
