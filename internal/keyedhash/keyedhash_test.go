package keyedhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest_KnownVectors(t *testing.T) {
	cases := []struct {
		key, text, want string
	}{
		{"000000042", "the", "0f866bea8135244acff4266d5aae53a847909f94c81e019bd533b104071035b8"},
		{"049677629", "tyrant", "a9438ee7ea10e3b2a6b550d63e08c2dc61288aba27921f799f5378110d081f30"},
		{"", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"ab", "c", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Digest(tc.key, tc.text), "Digest(%q, %q)", tc.key, tc.text)
	}
}

func TestDigest_Deterministic(t *testing.T) {
	first := Digest("123456789", "word")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Digest("123456789", "word"))
	}
	assert.Len(t, first, Size)
}

func TestHasher_ReuseMatchesDigest(t *testing.T) {
	h := New("049677629")
	// a long word forces the scratch buffer to grow; later short words must not see stale bytes
	words := []string{strings.Repeat("x", 200), "tyrant", "a", ""}
	for _, w := range words {
		assert.Equal(t, Digest("049677629", w), Hex(h.Sum(w)), "word %q", w)
	}
	assert.Equal(t, Digest("049677629", "tyrant."), Hex(h.SumSuffix("tyrant", ".")))
	assert.Equal(t, Digest("049677629", "tyrant”"), Hex(h.SumSuffix("tyrant", "”")))
}

func TestParse(t *testing.T) {
	d := Digest("1", "x")
	s, ok := Parse(d)
	require.True(t, ok)
	assert.Equal(t, d, Hex(s))

	up, ok := Parse(strings.ToUpper(d))
	require.True(t, ok)
	assert.Equal(t, s, up)

	_, ok = Parse(d[:63])
	assert.False(t, ok)
	_, ok = Parse(strings.Repeat("z", Size))
	assert.False(t, ok)
}

func TestIsDigest(t *testing.T) {
	assert.True(t, IsDigest(strings.Repeat("a", 64)))
	assert.True(t, IsDigest(strings.Repeat("F", 64)))
	assert.False(t, IsDigest(strings.Repeat("a", 63)))
	assert.False(t, IsDigest(strings.Repeat("a", 65)))
	assert.False(t, IsDigest(strings.Repeat("g", 64)))
	assert.Equal(t, strings.Repeat("ab", 32), Normalize(strings.Repeat("AB", 32)))
}
