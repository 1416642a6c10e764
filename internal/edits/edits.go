package edits

import (
	"errors"
	"fmt"
)

// Common alphabets for neighborhood generation.
var (
	Lowercase    = []rune("abcdefghijklmnopqrstuvwxyz")
	ASCIILetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
)

// ErrDepth is returned for neighborhood depths other than 1 or 2.
var ErrDepth = errors.New("depth must be 1 or 2")

// Walk calls fn once for every distinct member of the edit neighborhood of
// word, in generation order, until fn returns false.
//
// Depth 1 applies, for every rune position k: a deletion, an adjacent
// transposition (k < n-1) and a substitution by every alphabet rune; then an
// insertion of every alphabet rune at every position in [0, n]. Depth 2 applies
// the depth-1 pass to each depth-1 member and unions the results. This is the
// neighborhood of the neighborhood, not an exact edit-distance-2 ball.
func Walk(word string, alphabet []rune, depth int, fn func(string) bool) error {
	if depth != 1 && depth != 2 {
		return fmt.Errorf("%w: got %d", ErrDepth, depth)
	}
	seen := make(map[string]struct{})
	emit := func(s string) bool {
		if _, ok := seen[s]; ok {
			return true
		}
		seen[s] = struct{}{}
		return fn(s)
	}
	if depth == 1 {
		pass([]rune(word), alphabet, emit)
		return nil
	}

	var first []string
	firstSeen := make(map[string]struct{})
	pass([]rune(word), alphabet, func(s string) bool {
		if _, ok := firstSeen[s]; !ok {
			firstSeen[s] = struct{}{}
			first = append(first, s)
		}
		return true
	})
	for _, e1 := range first {
		if !pass([]rune(e1), alphabet, emit) {
			return nil
		}
	}
	return nil
}

// Neighbors returns the edit neighborhood of word as an ordered, duplicate-free
// slice.
func Neighbors(word string, alphabet []rune, depth int) ([]string, error) {
	var out []string
	err := Walk(word, alphabet, depth, func(s string) bool {
		out = append(out, s)
		return true
	})
	return out, err
}

// UpperBound is the depth-1 neighborhood size before duplicates collapse:
// n deletions, n-1 transpositions, n*a substitutions and (n+1)*a insertions.
func UpperBound(n, a int) int {
	if n == 0 {
		return a
	}
	return n + (n - 1) + n*a + (n+1)*a
}

// pass runs the depth-1 operation set over r. It reports false if emit
// stopped the enumeration.
func pass(r []rune, alphabet []rune, emit func(string) bool) bool {
	n := len(r)
	buf := make([]rune, 0, n+1)
	for k := 0; k < n; k++ {
		buf = append(append(buf[:0], r[:k]...), r[k+1:]...)
		if !emit(string(buf)) {
			return false
		}
		if k < n-1 {
			buf = append(buf[:0], r...)
			buf[k], buf[k+1] = buf[k+1], buf[k]
			if !emit(string(buf)) {
				return false
			}
		}
		for _, c := range alphabet {
			buf = append(buf[:0], r...)
			buf[k] = c
			if !emit(string(buf)) {
				return false
			}
		}
	}
	for k := 0; k <= n; k++ {
		for _, c := range alphabet {
			buf = append(append(append(buf[:0], r[:k]...), c), r[k:]...)
			if !emit(string(buf)) {
				return false
			}
		}
	}
	return true
}
