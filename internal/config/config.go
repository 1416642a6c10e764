package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LocalNames are searched, in order, in the working directory.
var LocalNames = []string{".keyhunt.yml", ".keyhunt.yaml", "keyhunt.yml", "keyhunt.yaml"}

// FileConfig is the on-disk YAML configuration shape for keyhunt.
type FileConfig struct {
	Threads    *int     `yaml:"threads,omitempty"`
	Anchors    []string `yaml:"anchors,omitempty"`
	Dictionary []string `yaml:"dictionary,omitempty"`
	NoColor    *bool    `yaml:"no_color,omitempty"`

	// Key space
	KeyStart *uint64 `yaml:"key_start,omitempty"`
	KeyEnd   *uint64 `yaml:"key_end,omitempty"`
	KeyWidth *int    `yaml:"key_width,omitempty"`

	// Typo search
	Alphabet  *string  `yaml:"alphabet,omitempty"`
	Suffixes  []string `yaml:"suffixes,omitempty"`
	DeepWords []string `yaml:"deep_words,omitempty"`
	Depth     *int     `yaml:"depth,omitempty"`

	ProgressInterval *string `yaml:"progress_interval,omitempty"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches dir for one of LocalNames.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// GlobalPath returns the global config location under XDG_CONFIG_HOME or
// ~/.config.
func GlobalPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "", errors.New("no config dir")
	}
	return filepath.Join(base, "keyhunt", "config.yml"), nil
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p, err := GlobalPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Interval parses ProgressInterval; unset or invalid values yield 0.
func (fc FileConfig) Interval() time.Duration {
	if fc.ProgressInterval == nil {
		return 0
	}
	d, err := time.ParseDuration(*fc.ProgressInterval)
	if err != nil {
		return 0
	}
	return d
}
