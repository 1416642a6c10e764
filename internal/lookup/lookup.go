// Package lookup builds the digest-to-word table for a recovered key.
package lookup

import (
	"github.com/keyhunt/keyhunt/internal/keyedhash"
	"github.com/keyhunt/keyhunt/internal/types"
)

// Table maps keyed digests back to their source words.
type Table struct {
	m map[keyedhash.Sum]string
}

// Build hashes every word and then every anchor under key. A later word whose
// digest collides with an earlier one replaces it.
func Build(key types.Key, words, anchors []string) Table {
	t := Table{m: make(map[keyedhash.Sum]string, len(words)+len(anchors))}
	h := keyedhash.New(string(key))
	for _, w := range words {
		t.m[h.Sum(w)] = w
	}
	for _, w := range anchors {
		t.m[h.Sum(w)] = w
	}
	return t
}

// Len is the number of distinct digests in the table.
func (t Table) Len() int { return len(t.m) }

// Lookup returns the word for a hex digest.
func (t Table) Lookup(digest string) (string, bool) {
	s, ok := keyedhash.Parse(digest)
	if !ok {
		return "", false
	}
	w, ok := t.m[s]
	return w, ok
}
