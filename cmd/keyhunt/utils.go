package keyhunt

import (
	"math"
	"time"

	"github.com/keyhunt/keyhunt/internal/config"
	"github.com/keyhunt/keyhunt/internal/keysearch"
)

// fileConfigs loads the global and working-directory configs. Missing files
// yield zero values.
func fileConfigs() (local, global config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		local = c
	}
	return local, global
}

func keySpace(lcfg, gcfg config.FileConfig) keysearch.KeySpace {
	s := keysearch.DefaultKeySpace()
	if w := pickInt(flagKeyWidth, lcfg.KeyWidth, gcfg.KeyWidth); w != 0 {
		s.Width = w
	}
	s.Start = pickUint64(flagKeyStart, lcfg.KeyStart, gcfg.KeyStart)
	s.End = pickUint64(flagKeyEnd, lcfg.KeyEnd, gcfg.KeyEnd)
	if s.End == 0 {
		s.End = pow10(s.Width)
	}
	return s
}

func pow10(n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		if v > math.MaxUint64/10 {
			return math.MaxUint64
		}
		v *= 10
	}
	return v
}

func anchors(lcfg, gcfg config.FileConfig) []string {
	if a := pickStrings(flagAnchors, lcfg.Anchors, gcfg.Anchors); len(a) > 0 {
		return a
	}
	return keysearch.DefaultAnchors
}

func alphabet(lcfg, gcfg config.FileConfig) []rune {
	s := pickString(flagAlphabet, lcfg.Alphabet, gcfg.Alphabet)
	if s == "" {
		return nil
	}
	return []rune(s)
}

func progressInterval(lcfg, gcfg config.FileConfig) time.Duration {
	if d := lcfg.Interval(); d > 0 {
		return d
	}
	return gcfg.Interval()
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickStrings(cli, local, global []string) []string {
	if len(cli) > 0 {
		return cli
	}
	if len(local) > 0 {
		return local
	}
	return global
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickUint64(cli uint64, local, global *uint64) uint64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
