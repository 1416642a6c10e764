package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_Smoke(t *testing.T) {
	dir := t.TempDir()
	const key Key = "000000314"
	var digests []string
	for _, w := range []string{"the", "cat", "and", "dog"} {
		digests = append(digests, Digest(key, w))
	}
	in := filepath.Join(dir, "puzzle.txt")
	require.NoError(t, os.WriteFile(in, []byte(strings.Join(digests, "\n")), 0o644))
	dict := filepath.Join(dir, "words")
	require.NoError(t, os.WriteFile(dict, []byte("cat\ndog\n"), 0o644))

	res, err := Solve(context.Background(), Config{
		Input:           in,
		Space:           KeySpace{Start: 0, End: 1000, Width: 9},
		Threads:         2,
		DictionaryPaths: []string{dict},
	})
	require.NoError(t, err)
	assert.Equal(t, key, res.Key)
	assert.Equal(t, "the cat and dog", res.Message.String())

	var buf bytes.Buffer
	require.NoError(t, MarshalResult(&buf, res))
	rep, err := UnmarshalReport(&buf)
	require.NoError(t, err)
	assert.Equal(t, key, rep.Key)
	assert.True(t, rep.Solved)
}

func TestSolve_NoHashes(t *testing.T) {
	in := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(in, nil, 0o644))
	_, err := Solve(context.Background(), Config{Input: in})
	assert.ErrorIs(t, err, ErrNoHashes)
}

func TestNeighbors_DefaultAlphabet(t *testing.T) {
	got, err := Neighbors("a", nil, 1)
	require.NoError(t, err)
	assert.Contains(t, got, "A")
	assert.Contains(t, got, "")
}

func TestDefaultAnchors_Copy(t *testing.T) {
	a := DefaultAnchors()
	a[0] = "changed"
	assert.Equal(t, "the", DefaultAnchors()[0])
}
