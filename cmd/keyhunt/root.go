package keyhunt

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	flagJSON    bool
	flagTable   bool
	flagNoColor bool
	flagVerbose bool
	flagThreads int

	// key space and anchors, shared by solve and key
	flagAnchors  []string
	flagKeyStart uint64
	flagKeyEnd   uint64
	flagKeyWidth int

	// typo search, shared by solve and typo
	flagDict       []string
	flagAlphabet   string
	flagSuffixes   []string
	flagNoSuffixes bool
	flagDepth      int
	flagDeep       []string

	logger  *zap.Logger
	version = "0.1.0"
)

// rootCmd is the base Cobra command. Run with a corpus path it solves the
// puzzle end to end.
var rootCmd = &cobra.Command{
	Use:   "keyhunt [puzzle.txt]",
	Short: "Recover the key of a keyed-hash puzzle and decode it",
	Long: `keyhunt reads a text file of SHA-256(key || word) digests, brute-forces the
numeric key with a handful of anchor words, decodes every digest through a
dictionary and repairs misspelled words with edit-neighborhood search.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if flagVerbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSolve,
}

// Execute runs the keyhunt CLI. It should be called by the main package.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "emit JSON")
	pf.BoolVar(&flagTable, "table", false, "output resolutions as a table")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
	pf.IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")

	pf.StringSliceVar(&flagAnchors, "anchors", nil, "anchor words tried against every key (default the,The,and,...)")
	pf.Uint64Var(&flagKeyStart, "key-start", 0, "first key of the search space")
	pf.Uint64Var(&flagKeyEnd, "key-end", 0, "end of the search space, exclusive (0 = 10^width)")
	pf.IntVar(&flagKeyWidth, "key-width", 0, "key digits, zero-padded (default 9)")

	pf.StringSliceVar(&flagDict, "dict", nil, "word list files or globs (default /usr/share/dict/words)")
	pf.StringVar(&flagAlphabet, "alphabet", "", "letters used for substitutions and insertions (default a-zA-Z)")
	pf.StringSliceVar(&flagSuffixes, "suffixes", nil, "punctuation tried after each typo candidate")
	pf.BoolVar(&flagNoSuffixes, "no-suffixes", false, "do not try punctuation suffixes")
	pf.IntVar(&flagDepth, "depth", 0, "edit depth for every dictionary word, 1 or 2 (default 1)")
	pf.StringSliceVar(&flagDeep, "deep", nil, "words searched at depth 2")
}

// colorDisabled is true when the user asked for plain output or stdout is
// not a terminal.
func colorDisabled(fromConfig bool) bool {
	if flagNoColor || fromConfig || os.Getenv("NO_COLOR") != "" {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

func stderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
