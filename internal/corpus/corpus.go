// Package corpus loads puzzle artifacts: free-form text in which every
// whitespace-separated 64-character hex token is a keyed digest.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/keyhunt/keyhunt/internal/keyedhash"
)

// ErrCorpusNotFound is returned when the artifact path does not exist.
var ErrCorpusNotFound = errors.New("corpus not found")

// Corpus is an immutable view of a loaded artifact.
type Corpus struct {
	Path        string
	Lines       []string // original lines, without line terminators
	Digests     []string // digest tokens in encounter order, lower-cased
	Fingerprint string   // xxhash64 of the raw artifact bytes
}

// Load reads the artifact at path. The path "-" reads standard input.
func Load(path string) (Corpus, error) {
	if path == "-" {
		c, err := LoadReader(os.Stdin)
		c.Path = path
		return c, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Corpus{}, fmt.Errorf("%w: %s", ErrCorpusNotFound, path)
		}
		return Corpus{}, fmt.Errorf("read corpus: %w", err)
	}
	c := parse(b)
	c.Path = path
	return c, nil
}

// LoadReader parses an artifact from r.
func LoadReader(r io.Reader) (Corpus, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Corpus{}, fmt.Errorf("read corpus: %w", err)
	}
	return parse(b), nil
}

// parse splits b into lines of any length. A trailing newline does not start
// an empty line, and a CR before LF is dropped.
func parse(b []byte) Corpus {
	c := Corpus{Fingerprint: fastHash(b)}
	if len(b) == 0 {
		return c
	}
	raw := bytes.Split(b, []byte("\n"))
	if len(raw[len(raw)-1]) == 0 {
		raw = raw[:len(raw)-1]
	}
	c.Lines = make([]string, 0, len(raw))
	for _, line := range raw {
		line = bytes.TrimSuffix(line, []byte("\r"))
		c.Lines = append(c.Lines, string(line))
		for _, tok := range bytes.Fields(line) {
			// anything else is reconstruction context and is dropped silently
			if keyedhash.IsDigest(string(tok)) {
				c.Digests = append(c.Digests, keyedhash.Normalize(string(tok)))
			}
		}
	}
	return c
}

// Set returns the distinct digests as raw sums for membership tests.
func (c Corpus) Set() map[keyedhash.Sum]struct{} {
	out := make(map[keyedhash.Sum]struct{}, len(c.Digests))
	for _, d := range c.Digests {
		if s, ok := keyedhash.Parse(d); ok {
			out[s] = struct{}{}
		}
	}
	return out
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
