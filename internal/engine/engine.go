package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/keyhunt/keyhunt/internal/corpus"
	"github.com/keyhunt/keyhunt/internal/decode"
	"github.com/keyhunt/keyhunt/internal/dictionary"
	"github.com/keyhunt/keyhunt/internal/keyedhash"
	"github.com/keyhunt/keyhunt/internal/keysearch"
	"github.com/keyhunt/keyhunt/internal/lookup"
	"github.com/keyhunt/keyhunt/internal/types"
	"github.com/keyhunt/keyhunt/internal/typo"
)

var (
	// ErrNoHashes is returned when the corpus holds no digest tokens.
	ErrNoHashes = errors.New("no hashes found")
	// ErrInvalidKey is returned when a supplied key is not all digits.
	ErrInvalidKey = errors.New("invalid key")
)

// Config controls a solving run.
type Config struct {
	Input string // corpus path, "-" for stdin

	// Key skips key recovery when set.
	Key     types.Key
	Space   keysearch.KeySpace // zero value means keysearch.DefaultKeySpace
	Anchors []string           // nil means keysearch.DefaultAnchors
	Threads int

	// KeyOnly stops after key recovery.
	KeyOnly bool

	DictionaryPaths []string
	Alphabet        []rune
	Suffixes        []string
	NoSuffixes      bool
	Depth           int
	DeepWords       []string
	NoTypos         bool

	Progress         func(tested, total uint64)
	ProgressInterval time.Duration

	Logger *zap.Logger
}

// Result contains the decoded message and run statistics.
type Result struct {
	Input       string
	Fingerprint string
	Lines       []string
	Digests     int

	Key         types.Key
	KeyProvided bool
	KeyStats    keysearch.Result

	DictionarySize     int
	DictionarySources  []string
	DictionaryFallback bool
	LookupSize         int

	Message     decode.Message
	Resolutions []types.TypoResolution
	Unresolved  []string // digests no typo candidate reproduced
	Candidates  uint64
	// TyposSkipped is set when digests stayed unresolved because typo
	// search was disabled.
	TyposSkipped bool

	Duration time.Duration
}

// Solved reports whether every digest was decoded or repaired.
func (r Result) Solved() bool {
	return len(r.Message.Tokens) > 0 && r.Message.Unknown() == 0
}

// Reconstructed lays the decoded message over the corpus lines.
func (r Result) Reconstructed() []string {
	return r.Message.Reconstruct(r.Lines)
}

func (cfg Config) withDefaults() Config {
	if cfg.Space == (keysearch.KeySpace{}) {
		cfg.Space = keysearch.DefaultKeySpace()
	}
	if cfg.Anchors == nil {
		cfg.Anchors = keysearch.DefaultAnchors
	}
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// Solve loads cfg.Input and runs the pipeline over it.
func Solve(ctx context.Context, cfg Config) (Result, error) {
	c, err := corpus.Load(cfg.Input)
	if err != nil {
		return Result{Input: cfg.Input}, err
	}
	return SolveCorpus(ctx, c, cfg)
}

// SolveCorpus runs the pipeline over an already loaded corpus. Key recovery
// failures are fatal; dictionary and typo failures are reported on the
// Result.
func SolveCorpus(ctx context.Context, c corpus.Corpus, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	log := cfg.Logger
	started := time.Now()
	res := Result{
		Input:       c.Path,
		Fingerprint: c.Fingerprint,
		Lines:       c.Lines,
		Digests:     len(c.Digests),
	}
	if len(c.Digests) == 0 {
		return res, ErrNoHashes
	}
	log.Debug("corpus loaded",
		zap.String("path", c.Path),
		zap.Int("lines", len(c.Lines)),
		zap.Int("digests", len(c.Digests)),
		zap.String("fingerprint", c.Fingerprint))

	key, err := recoverKey(ctx, c, cfg, &res)
	if err != nil {
		res.Duration = time.Since(started)
		return res, err
	}
	res.Key = key
	if cfg.KeyOnly {
		res.Duration = time.Since(started)
		return res, nil
	}

	dict, derr := dictionary.Load(dictionary.Options{Paths: cfg.DictionaryPaths, Anchors: cfg.Anchors})
	switch {
	case derr == nil:
	case dict.Fallback:
		log.Warn("using fallback dictionary", zap.Error(derr))
	default:
		log.Warn("dictionary source skipped", zap.Error(derr))
	}
	res.DictionarySize = dict.Len()
	res.DictionarySources = dict.Sources
	res.DictionaryFallback = dict.Fallback

	table := lookup.Build(key, dict.Words, cfg.Anchors)
	res.LookupSize = table.Len()

	msg, unresolved := decode.Decode(c.Digests, table)
	log.Debug("decoded",
		zap.Int("tokens", len(msg.Tokens)),
		zap.Int("unresolved", len(unresolved)))

	if len(unresolved) > 0 && !cfg.NoTypos {
		tr, err := typo.ResolveAll(ctx, unresolved, dict.Words, key, typo.Options{
			Alphabet:   cfg.Alphabet,
			Suffixes:   cfg.Suffixes,
			NoSuffixes: cfg.NoSuffixes,
			Depth:      cfg.Depth,
			DeepWords:  cfg.DeepWords,
			Logger:     log,
		})
		if err != nil {
			res.Message = msg
			res.Unresolved = unresolved
			res.Duration = time.Since(started)
			return res, fmt.Errorf("typo search: %w", err)
		}
		msg.Fill(tr.Resolved)
		res.Resolutions = tr.Resolved
		res.Candidates = tr.Candidates
		unresolved = tr.Unresolved
	}
	res.Message = msg
	res.Unresolved = unresolved
	res.TyposSkipped = cfg.NoTypos && len(unresolved) > 0
	res.Duration = time.Since(started)
	return res, nil
}

func recoverKey(ctx context.Context, c corpus.Corpus, cfg Config, res *Result) (types.Key, error) {
	if cfg.Key != "" {
		if err := CheckKey(cfg.Key); err != nil {
			return "", err
		}
		res.KeyProvided = true
		if !keysearch.Matches(cfg.Key, cfg.Anchors, c.Set()) {
			cfg.Logger.Warn("supplied key matches no anchor word", zap.String("key", string(cfg.Key)))
		}
		return cfg.Key, nil
	}
	ks, err := keysearch.FindKey(ctx, c.Set(), keysearch.Config{
		Space:            cfg.Space,
		Anchors:          cfg.Anchors,
		Workers:          cfg.Threads,
		Progress:         cfg.Progress,
		ProgressInterval: cfg.ProgressInterval,
		Logger:           cfg.Logger,
	})
	res.KeyStats = ks
	if err != nil {
		return "", err
	}
	return ks.Key, nil
}

// CheckKey rejects a supplied key that is empty or not all digits.
func CheckKey(k types.Key) error {
	if k == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	for _, r := range k {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidKey, k)
		}
	}
	return nil
}

// Digest exposes the keyed hash used by every stage.
func Digest(key types.Key, word string) string {
	return keyedhash.Digest(string(key), word)
}
