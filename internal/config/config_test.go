package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "keyhunt.yaml", `threads: 4
anchors: [the, and]
dictionary:
  - /usr/share/dict/words
  - lists/**/*.txt
key_start: 100
key_end: 20000
key_width: 6
alphabet: abc
suffixes: [".", "!"]
deep_words: [tyrant]
depth: 2
no_color: true
progress_interval: 250ms
`)
	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.NotNil(t, cfg.Threads)
	assert.Equal(t, 4, *cfg.Threads)
	assert.Equal(t, []string{"the", "and"}, cfg.Anchors)
	assert.Equal(t, []string{"/usr/share/dict/words", "lists/**/*.txt"}, cfg.Dictionary)
	require.NotNil(t, cfg.KeyStart)
	require.NotNil(t, cfg.KeyEnd)
	require.NotNil(t, cfg.KeyWidth)
	assert.Equal(t, uint64(100), *cfg.KeyStart)
	assert.Equal(t, uint64(20000), *cfg.KeyEnd)
	assert.Equal(t, 6, *cfg.KeyWidth)
	require.NotNil(t, cfg.Alphabet)
	assert.Equal(t, "abc", *cfg.Alphabet)
	assert.Equal(t, []string{".", "!"}, cfg.Suffixes)
	assert.Equal(t, []string{"tyrant"}, cfg.DeepWords)
	require.NotNil(t, cfg.Depth)
	assert.Equal(t, 2, *cfg.Depth)
	require.NotNil(t, cfg.NoColor)
	assert.True(t, *cfg.NoColor)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval())
}

func TestLoadFile_Invalid(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "bad.yml", "threads: [unterminated\n")
	_, err := LoadFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), p)
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "keyhunt.yaml", "threads: 1\n")
	writeTemp(t, dir, ".keyhunt.yaml", "threads: 7\n")
	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Threads)
	assert.Equal(t, 7, *cfg.Threads)
}

func TestLoadLocal_NoConfig(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	assert.Error(t, err)
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "keyhunt"), 0o755))
	writeTemp(t, filepath.Join(dir, "keyhunt"), "config.yml", "threads: 9\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	require.NoError(t, err)
	require.NotNil(t, cfg.Threads)
	assert.Equal(t, 9, *cfg.Threads)
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	_, err := LoadGlobal()
	assert.Error(t, err)
}

func TestInterval_Invalid(t *testing.T) {
	s := "soon"
	assert.Zero(t, FileConfig{ProgressInterval: &s}.Interval())
	assert.Zero(t, FileConfig{}.Interval())
}

func TestMarshal_OmitsUnset(t *testing.T) {
	threads := 2
	b, err := yaml.Marshal(FileConfig{Threads: &threads})
	require.NoError(t, err)
	assert.Equal(t, "threads: 2\n", string(b))
}
