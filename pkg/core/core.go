package core

import (
	"context"

	"github.com/keyhunt/keyhunt/internal/edits"
	"github.com/keyhunt/keyhunt/internal/engine"
	"github.com/keyhunt/keyhunt/internal/keysearch"
	"github.com/keyhunt/keyhunt/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Result = engine.Result
type Key = types.Key
type KeySpace = keysearch.KeySpace
type TypoResolution = types.TypoResolution

// Errors callers can match with errors.Is.
var (
	ErrNoHashes    = engine.ErrNoHashes
	ErrKeyNotFound = keysearch.ErrKeyNotFound
)

// Solve is the stable entrypoint for other programs.
func Solve(ctx context.Context, cfg Config) (Result, error) {
	return engine.Solve(ctx, cfg)
}

// Digest returns the hex keyed hash of word under key.
func Digest(key Key, word string) string { return engine.Digest(key, word) }

// Neighbors returns the depth-1 or depth-2 edit neighborhood of word. A nil
// alphabet means ASCII letters.
func Neighbors(word string, alphabet []rune, depth int) ([]string, error) {
	if alphabet == nil {
		alphabet = edits.ASCIILetters
	}
	return edits.Neighbors(word, alphabet, depth)
}

// DefaultAnchors returns a copy of the built-in anchor words.
func DefaultAnchors() []string {
	return append([]string(nil), keysearch.DefaultAnchors...)
}
