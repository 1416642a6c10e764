// Package decode maps an ordered digest sequence through a lookup table and
// tracks the positions that still need typo correction.
package decode

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/keyhunt/keyhunt/internal/keyedhash"
	"github.com/keyhunt/keyhunt/internal/lookup"
	"github.com/keyhunt/keyhunt/internal/types"
)

// Message is a decoded digest sequence, aligned with corpus order.
type Message struct {
	Tokens []types.Token
}

// Decode resolves each digest in order. Digests with no table entry become
// placeholders; they are also returned once each, in first-seen order.
func Decode(digests []string, t lookup.Table) (Message, []string) {
	m := Message{Tokens: make([]types.Token, 0, len(digests))}
	var unresolved []string
	seen := map[string]struct{}{}
	for _, d := range digests {
		if w, ok := t.Lookup(d); ok {
			m.Tokens = append(m.Tokens, types.Token{Digest: d, Word: w, Status: types.StatusDecoded})
			continue
		}
		m.Tokens = append(m.Tokens, types.Token{Digest: d, Word: types.Placeholder, Status: types.StatusUnknown})
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			unresolved = append(unresolved, d)
		}
	}
	return m, unresolved
}

// Fill replaces placeholders whose digest has a resolution with the corrupted
// string, recording the intended word. It returns the number of tokens filled.
func (m *Message) Fill(res []types.TypoResolution) int {
	if len(res) == 0 {
		return 0
	}
	byDigest := make(map[string]types.TypoResolution, len(res))
	for _, r := range res {
		byDigest[r.Digest] = r
	}
	n := 0
	for i := range m.Tokens {
		tok := &m.Tokens[i]
		if tok.Status != types.StatusUnknown {
			continue
		}
		if r, ok := byDigest[tok.Digest]; ok {
			tok.Word = r.Corrupted
			tok.Intended = r.Intended
			tok.Status = types.StatusTypo
			n++
		}
	}
	return n
}

// Unknown counts placeholder tokens.
func (m Message) Unknown() int {
	n := 0
	for _, t := range m.Tokens {
		if t.Status == types.StatusUnknown {
			n++
		}
	}
	return n
}

// Words returns the token words in order.
func (m Message) Words() []string {
	out := make([]string, len(m.Tokens))
	for i, t := range m.Tokens {
		out[i] = t.Word
	}
	return out
}

// String joins the token words with single spaces.
func (m Message) String() string { return strings.Join(m.Words(), " ") }

// Reconstruct lays the decoded words back over the original corpus lines:
// every digest token is replaced by the next decoded word and all other text,
// including whitespace, is kept.
func (m Message) Reconstruct(lines []string) []string {
	out := make([]string, 0, len(lines))
	next := 0
	for _, line := range lines {
		var b strings.Builder
		i := 0
		for i < len(line) {
			r, size := utf8.DecodeRuneInString(line[i:])
			if unicode.IsSpace(r) {
				b.WriteString(line[i : i+size])
				i += size
				continue
			}
			j := i
			for j < len(line) {
				r, size := utf8.DecodeRuneInString(line[j:])
				if unicode.IsSpace(r) {
					break
				}
				j += size
			}
			field := line[i:j]
			if keyedhash.IsDigest(field) && next < len(m.Tokens) {
				b.WriteString(m.Tokens[next].Word)
				next++
			} else {
				b.WriteString(field)
			}
			i = j
		}
		out = append(out, b.String())
	}
	return out
}
