package keyhunt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keyhunt/keyhunt/internal/config"
	"github.com/keyhunt/keyhunt/internal/keysearch"
)

func TestPickPrecedence(t *testing.T) {
	l, g := 3, 5
	assert.Equal(t, 7, pickInt(7, &l, &g))
	assert.Equal(t, 3, pickInt(0, &l, &g))
	assert.Equal(t, 5, pickInt(0, nil, &g))
	assert.Equal(t, 0, pickInt(0, nil, nil))

	assert.Equal(t, []string{"cli"}, pickStrings([]string{"cli"}, []string{"l"}, []string{"g"}))
	assert.Equal(t, []string{"l"}, pickStrings(nil, []string{"l"}, []string{"g"}))
	assert.Equal(t, []string{"g"}, pickStrings(nil, nil, []string{"g"}))

	f := false
	assert.False(t, pickBool(false, &f, nil))
	assert.True(t, pickBool(true, &f, nil))
}

func TestKeySpace(t *testing.T) {
	assert.Equal(t, keysearch.DefaultKeySpace(), keySpace(config.FileConfig{}, config.FileConfig{}))

	w, end := 4, uint64(500)
	s := keySpace(config.FileConfig{KeyWidth: &w}, config.FileConfig{})
	assert.Equal(t, keysearch.KeySpace{Start: 0, End: 10_000, Width: 4}, s)

	s = keySpace(config.FileConfig{KeyWidth: &w}, config.FileConfig{KeyEnd: &end})
	assert.Equal(t, uint64(500), s.End)
}

func TestPow10(t *testing.T) {
	assert.Equal(t, uint64(1), pow10(0))
	assert.Equal(t, uint64(1_000_000_000), pow10(9))
	assert.Equal(t, uint64(math.MaxUint64), pow10(25))
}
