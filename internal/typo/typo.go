// Package typo recovers digests that match no dictionary word by hashing the
// edit neighborhoods of dictionary words, optionally followed by a trailing
// punctuation mark, until a candidate reproduces the digest.
package typo

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/keyhunt/keyhunt/internal/edits"
	"github.com/keyhunt/keyhunt/internal/keyedhash"
	"github.com/keyhunt/keyhunt/internal/types"
)

// ErrUnresolved is returned by Resolve when no candidate matches.
var ErrUnresolved = errors.New("digest could not be resolved")

// DefaultSuffixes are the punctuation marks tried after every candidate.
var DefaultSuffixes = []string{".", ",", "?", "!", ";", ":", "\"", "'", "’", "“", "”", "-", ")", "]", "}"}

// DefaultMinLength skips words too short to recover reliably.
const DefaultMinLength = 2

// Options tunes the search. The zero value searches depth 1 over ASCII
// letters with DefaultSuffixes.
type Options struct {
	Alphabet   []rune
	Suffixes   []string
	NoSuffixes bool
	// Depth applies to every word; DeepWords are searched at depth 2 even
	// when Depth is 1.
	Depth     int
	DeepWords []string
	MinLength int
	Logger    *zap.Logger
}

func (o Options) withDefaults() Options {
	if len(o.Alphabet) == 0 {
		o.Alphabet = edits.ASCIILetters
	}
	if o.NoSuffixes {
		o.Suffixes = nil
	} else if o.Suffixes == nil {
		o.Suffixes = DefaultSuffixes
	}
	if o.Depth == 0 {
		o.Depth = 1
	}
	if o.MinLength == 0 {
		o.MinLength = DefaultMinLength
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Result is the outcome of a batch search.
type Result struct {
	Resolved   []types.TypoResolution // in input digest order
	Unresolved []string
	Candidates uint64 // candidate strings hashed, suffix variants excluded
}

// Resolve searches for a single digest.
func Resolve(ctx context.Context, digest string, words []string, key types.Key, opts Options) (types.TypoResolution, error) {
	res, err := ResolveAll(ctx, []string{digest}, words, key, opts)
	if err != nil {
		return types.TypoResolution{}, err
	}
	if len(res.Resolved) == 0 {
		return types.TypoResolution{}, fmt.Errorf("%w: %s", ErrUnresolved, digest)
	}
	return res.Resolved[0], nil
}

// ResolveAll walks words in order and, for each word at least MinLength runes
// long, hashes every neighborhood candidate (and every candidate+suffix)
// under key. Each digest takes the first candidate that reproduces it. The
// walk stops once every digest is resolved.
func ResolveAll(ctx context.Context, digests []string, words []string, key types.Key, opts Options) (Result, error) {
	opts = opts.withDefaults()
	deep := make(map[string]struct{}, len(opts.DeepWords))
	for _, w := range opts.DeepWords {
		deep[w] = struct{}{}
	}

	targets := make(map[keyedhash.Sum]string, len(digests))
	for _, d := range digests {
		if s, ok := keyedhash.Parse(d); ok {
			targets[s] = keyedhash.Normalize(d)
		}
	}
	hits := make(map[string]types.TypoResolution, len(targets))
	h := keyedhash.New(string(key))
	var res Result

	for _, w := range words {
		if len(targets) == 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if utf8.RuneCountInString(w) < opts.MinLength {
			continue
		}
		depth := opts.Depth
		if _, ok := deep[w]; ok {
			depth = 2
		}
		record := func(sum keyedhash.Sum, corrupted, suffix string) {
			d := targets[sum]
			delete(targets, sum)
			hits[d] = types.TypoResolution{Digest: d, Corrupted: corrupted, Intended: w, Suffix: suffix, Depth: depth}
			opts.Logger.Debug("typo resolved",
				zap.String("digest", d),
				zap.String("corrupted", corrupted),
				zap.String("intended", w))
		}
		err := edits.Walk(w, opts.Alphabet, depth, func(cand string) bool {
			res.Candidates++
			if s := h.Sum(cand); hasTarget(targets, s) {
				record(s, cand, "")
			}
			for _, suf := range opts.Suffixes {
				if s := h.SumSuffix(cand, suf); hasTarget(targets, s) {
					record(s, cand+suf, suf)
				}
			}
			return len(targets) > 0
		})
		if err != nil {
			return res, err
		}
	}

	seen := make(map[string]struct{}, len(digests))
	for _, d := range digests {
		d = keyedhash.Normalize(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		if r, ok := hits[d]; ok {
			res.Resolved = append(res.Resolved, r)
		} else {
			res.Unresolved = append(res.Unresolved, d)
		}
	}
	return res, nil
}

func hasTarget(targets map[keyedhash.Sum]string, s keyedhash.Sum) bool {
	_, ok := targets[s]
	return ok
}
