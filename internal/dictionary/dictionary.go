// Package dictionary loads the word list used to decode a puzzle once its
// key is known. Sources are plain files with one word per line, given as
// paths or doublestar globs. When no source can be read, Load falls back to
// a small built-in list so a run can still make progress.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// DefaultPath is the system word list on most Unix systems.
const DefaultPath = "/usr/share/dict/words"

// ErrDictionaryUnavailable reports that no configured source could be read.
// Load still returns a usable fallback Dictionary alongside it.
var ErrDictionaryUnavailable = errors.New("dictionary unavailable")

// FallbackWords are used, together with the anchors, when no source loads.
var FallbackWords = []string{"example", "test", "words"}

// Dictionary is a deduplicated, ordered word list.
type Dictionary struct {
	Words    []string
	Sources  []string // files that were read
	Fallback bool
}

// Options selects dictionary sources.
type Options struct {
	Paths   []string // files or doublestar patterns; empty means DefaultPath
	Anchors []string // always included
}

// Len is the number of words.
func (d Dictionary) Len() int { return len(d.Words) }

// New builds a Dictionary from words followed by any anchors not already
// present.
func New(words, anchors []string) Dictionary {
	seen := make(map[string]struct{}, len(words)+len(anchors))
	var out []string
	add := func(w string) {
		if w == "" {
			return
		}
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	for _, w := range words {
		add(w)
	}
	for _, w := range anchors {
		add(w)
	}
	return Dictionary{Words: out}
}

// Load reads every source in opts. If none can be read it returns the
// anchors plus FallbackWords and an error wrapping ErrDictionaryUnavailable.
// A malformed glob is reported even when other sources load; unreadable
// plain paths are skipped silently in that case.
func Load(opts Options) (Dictionary, error) {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{DefaultPath}
	}
	files, err := expand(paths)
	var words, sources, failed []string
	for _, f := range files {
		ws, rerr := readWords(f)
		if rerr != nil {
			failed = append(failed, f)
			continue
		}
		words = append(words, ws...)
		sources = append(sources, f)
	}
	if len(sources) == 0 {
		d := New(opts.Anchors, FallbackWords)
		d.Fallback = true
		if err == nil && len(failed) > 0 {
			err = fmt.Errorf("cannot read %s", strings.Join(failed, ", "))
		} else if err == nil {
			err = fmt.Errorf("no files match %s", strings.Join(paths, ", "))
		}
		return d, fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}
	d := New(words, opts.Anchors)
	d.Sources = sources
	if err != nil {
		return d, fmt.Errorf("dictionary: %w", err)
	}
	return d, nil
}

func expand(patterns []string) ([]string, error) {
	var out []string
	var errs []error
	for _, p := range patterns {
		if !strings.ContainsAny(p, "*?[{") {
			out = append(out, p)
			continue
		}
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("bad pattern %q: %w", p, err))
			continue
		}
		out = append(out, matches...)
	}
	return out, errors.Join(errs...)
}

func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToValidUTF8(sc.Text(), ""))
		if w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}
