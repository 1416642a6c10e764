package keysearch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/keyhunt/keyhunt/internal/keyedhash"
	"github.com/keyhunt/keyhunt/internal/types"
)

var (
	// ErrKeyNotFound is returned when the whole key space was searched
	// without any anchor word producing a corpus digest.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidSpace is returned for empty or unformattable key spaces.
	ErrInvalidSpace = errors.New("invalid key space")

	errFound = errors.New("key found")
)

// checkEvery is the number of keys a worker tests between cancellation
// checks and progress updates.
const checkEvery = 1 << 14

// DefaultAnchors are common words expected somewhere in the plaintext.
var DefaultAnchors = []string{"the", "The", "and", "And", "a", "to", "of", "in", "is", "that"}

// KeySpace is the half-open range [Start, End) of numeric keys, each
// formatted as a Width-digit zero-padded decimal string.
type KeySpace struct {
	Start uint64
	End   uint64
	Width int
}

// DefaultKeySpace covers every 9-digit key.
func DefaultKeySpace() KeySpace {
	return KeySpace{Start: 0, End: 1_000_000_000, Width: 9}
}

// Size is the number of keys in the space.
func (s KeySpace) Size() uint64 {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Format renders i as a key of this space.
func (s KeySpace) Format(i uint64) types.Key {
	buf := make([]byte, s.Width)
	formatKey(buf, i)
	return types.Key(buf)
}

func (s KeySpace) validate() error {
	if s.Size() == 0 {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidSpace, s.Start, s.End)
	}
	if s.Width <= 0 || len(strconv.FormatUint(s.End-1, 10)) > s.Width {
		return fmt.Errorf("%w: %d does not fit in %d digits", ErrInvalidSpace, s.End-1, s.Width)
	}
	return nil
}

// Config controls a key search.
type Config struct {
	Space   KeySpace
	Anchors []string
	Workers int // 0 = GOMAXPROCS

	// Progress, when set, receives the number of keys tested so far at every
	// ProgressInterval and once more when the search ends.
	Progress         func(tested, total uint64)
	ProgressInterval time.Duration

	Logger *zap.Logger
}

// Result describes a successful search.
type Result struct {
	Key      types.Key
	Tested   uint64
	Workers  int
	Duration time.Duration
}

// Range is one worker's share of the key space.
type Range struct {
	Start, End uint64
}

// Partition splits [start, end) into contiguous ranges, one per worker. The
// last range absorbs the remainder.
func Partition(start, end uint64, workers int) []Range {
	if end <= start {
		return nil
	}
	total := end - start
	if workers <= 0 {
		workers = 1
	}
	if uint64(workers) > total {
		workers = int(total)
	}
	chunk := total / uint64(workers)
	out := make([]Range, workers)
	for i := range out {
		out[i] = Range{Start: start + uint64(i)*chunk, End: start + uint64(i+1)*chunk}
	}
	out[workers-1].End = end
	return out
}

// FindKey searches cfg.Space for a key k such that digest(k, anchor) is in
// digests for some anchor. Workers run in parallel; the first key reported
// wins and the remaining workers are cancelled. With duplicate valid keys the
// winner is whichever worker reports first.
func FindKey(ctx context.Context, digests map[keyedhash.Sum]struct{}, cfg Config) (Result, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Space.validate(); err != nil {
		return Result{}, err
	}
	if len(cfg.Anchors) == 0 {
		return Result{}, errors.New("keysearch: no anchor words")
	}
	if len(digests) == 0 {
		return Result{}, ErrKeyNotFound
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ranges := Partition(cfg.Space.Start, cfg.Space.End, workers)
	total := cfg.Space.Size()

	log.Info("key search started",
		zap.Int("workers", len(ranges)),
		zap.Uint64("start", cfg.Space.Start),
		zap.Uint64("end", cfg.Space.End),
		zap.Int("anchors", len(cfg.Anchors)))

	var tested atomic.Uint64
	stop := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.Progress != nil {
		interval := cfg.ProgressInterval
		if interval <= 0 {
			interval = 500 * time.Millisecond
		}
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			t := time.NewTicker(interval)
			defer t.Stop()
			for {
				select {
				case <-t.C:
					cfg.Progress(tested.Load(), total)
				case <-stop:
					cfg.Progress(tested.Load(), total)
					return
				}
			}
		}()
	}

	started := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	found := make(chan types.Key, len(ranges))
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			key, ok, err := search(gctx, r, cfg.Space.Width, cfg.Anchors, digests, &tested)
			if err != nil {
				return err
			}
			if ok {
				found <- key
				return errFound
			}
			return nil
		})
	}
	err := g.Wait()
	close(stop)
	reporter.Wait()
	close(found)

	res := Result{Tested: tested.Load(), Workers: len(ranges), Duration: time.Since(started)}
	if key, ok := <-found; ok {
		res.Key = key
		log.Info("key found", zap.String("key", string(key)), zap.Duration("elapsed", res.Duration))
		return res, nil
	}
	if err != nil && !errors.Is(err, errFound) {
		return res, err
	}
	log.Info("key space exhausted", zap.Uint64("tested", res.Tested))
	return res, ErrKeyNotFound
}

// Matches reports whether key hashes any anchor into digests.
func Matches(key types.Key, anchors []string, digests map[keyedhash.Sum]struct{}) bool {
	h := keyedhash.New(string(key))
	for _, a := range anchors {
		if _, ok := digests[h.Sum(a)]; ok {
			return true
		}
	}
	return false
}

// search scans one range. buf holds the current key digits followed by the
// anchor under test, so only the anchor tail is rewritten per hash.
func search(ctx context.Context, r Range, width int, anchors []string, digests map[keyedhash.Sum]struct{}, tested *atomic.Uint64) (types.Key, bool, error) {
	longest := 0
	for _, a := range anchors {
		if len(a) > longest {
			longest = len(a)
		}
	}
	buf := make([]byte, width, width+longest)
	formatKey(buf, r.Start)

	pending := uint64(0)
	for i := r.Start; i < r.End; i++ {
		if pending == checkEvery {
			tested.Add(pending)
			pending = 0
			if err := ctx.Err(); err != nil {
				return "", false, err
			}
		}
		for _, a := range anchors {
			buf = append(buf[:width], a...)
			if _, ok := digests[keyedhash.SumBytes(buf)]; ok {
				tested.Add(pending + 1)
				return types.Key(buf[:width]), true, nil
			}
		}
		pending++
		incrementKey(buf[:width])
	}
	tested.Add(pending)
	return "", false, nil
}

func formatKey(dst []byte, i uint64) {
	for j := len(dst) - 1; j >= 0; j-- {
		dst[j] = byte('0' + i%10)
		i /= 10
	}
}

func incrementKey(d []byte) {
	for j := len(d) - 1; j >= 0; j-- {
		if d[j] != '9' {
			d[j]++
			return
		}
		d[j] = '0'
	}
}
