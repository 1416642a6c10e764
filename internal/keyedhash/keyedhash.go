// Package keyedhash implements the keyed digest shared by every solver stage:
// SHA-256 over the key bytes followed by the text bytes, hex encoded.
package keyedhash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Size is the length of a hex-encoded digest.
const Size = 2 * sha256.Size

// Sum is a raw digest.
type Sum = [sha256.Size]byte

// Digest returns hex(sha256(key || text)).
func Digest(key, text string) string {
	h := New(key)
	s := h.Sum(text)
	return hex.EncodeToString(s[:])
}

// Parse decodes a 64-character hex digest. Upper-case input is accepted.
func Parse(s string) (Sum, bool) {
	var out Sum
	if len(s) != Size {
		return out, false
	}
	if _, err := hex.Decode(out[:], []byte(s)); err != nil {
		return out, false
	}
	return out, true
}

// IsDigest reports whether s is exactly Size hexadecimal characters.
func IsDigest(s string) bool {
	if len(s) != Size {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Normalize lower-cases a hex digest so it compares equal to Digest output.
func Normalize(s string) string { return strings.ToLower(s) }

// Hasher computes keyed sums for a fixed key, reusing one scratch buffer.
// A Hasher is not safe for concurrent use; give each goroutine its own.
type Hasher struct {
	key     int
	scratch []byte
}

// New returns a Hasher for key.
func New(key string) *Hasher {
	buf := make([]byte, len(key), len(key)+64)
	copy(buf, key)
	return &Hasher{key: len(key), scratch: buf}
}

// Sum returns sha256(key || text).
func (h *Hasher) Sum(text string) Sum {
	h.scratch = append(h.scratch[:h.key], text...)
	return sha256.Sum256(h.scratch)
}

// SumSuffix returns sha256(key || text || suffix) without building the
// concatenated string.
func (h *Hasher) SumSuffix(text, suffix string) Sum {
	h.scratch = append(h.scratch[:h.key], text...)
	h.scratch = append(h.scratch, suffix...)
	return sha256.Sum256(h.scratch)
}

// SumBytes returns sha256(b) for callers that manage their own key||text
// buffer.
func SumBytes(b []byte) Sum { return sha256.Sum256(b) }

// Hex returns the hex form of s.
func Hex(s Sum) string { return hex.EncodeToString(s[:]) }
