package keyhunt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/keyhunt/keyhunt/internal/config"
	"github.com/keyhunt/keyhunt/internal/engine"
	"github.com/keyhunt/keyhunt/internal/keysearch"
	"github.com/keyhunt/keyhunt/internal/report"
	"github.com/keyhunt/keyhunt/internal/types"
)

// defaultInput is read when no path is given.
const defaultInput = "puzzle.txt"

var (
	flagKey     string
	flagNoTypos bool
	flagLines   bool
	flagStrict  bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagKey, "key", "", "known key; skips key recovery")
	f.BoolVar(&flagNoTypos, "no-typos", false, "skip typo search for unresolved digests")
	f.BoolVar(&flagLines, "lines", false, "print the message laid out along the corpus lines")
	f.BoolVar(&flagStrict, "strict", false, "exit non-zero unless every digest is resolved")
}

func inputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultInput
}

// engineConfig merges flags, local and global config into an engine.Config.
func engineConfig(path string, lcfg, gcfg config.FileConfig) engine.Config {
	return engine.Config{
		Input:            path,
		Space:            keySpace(lcfg, gcfg),
		Anchors:          anchors(lcfg, gcfg),
		Threads:          pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		DictionaryPaths:  pickStrings(flagDict, lcfg.Dictionary, gcfg.Dictionary),
		Alphabet:         alphabet(lcfg, gcfg),
		Suffixes:         pickStrings(flagSuffixes, lcfg.Suffixes, gcfg.Suffixes),
		NoSuffixes:       flagNoSuffixes,
		Depth:            pickInt(flagDepth, lcfg.Depth, gcfg.Depth),
		DeepWords:        pickStrings(flagDeep, lcfg.DeepWords, gcfg.DeepWords),
		ProgressInterval: progressInterval(lcfg, gcfg),
		Logger:           logger,
	}
}

// attachProgress installs a single-line progress bar on stderr. The returned
// func terminates the line.
func attachProgress(cfg *engine.Config, w io.Writer) func() {
	if flagJSON || !stderrIsTerminal() {
		return func() {}
	}
	drawn := false
	cfg.Progress = func(tested, total uint64) {
		drawn = true
		pct := float64(tested) / float64(total) * 100
		_, _ = fmt.Fprintf(w, "\r[%d/%d] %.0f%%", tested, total, pct)
	}
	return func() {
		if drawn {
			_, _ = fmt.Fprintln(w)
		}
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	lcfg, gcfg := fileConfigs()
	cfg := engineConfig(inputPath(args), lcfg, gcfg)
	cfg.Key = types.Key(flagKey)
	cfg.NoTypos = flagNoTypos
	noColor := colorDisabled(pickBool(false, lcfg.NoColor, gcfg.NoColor))

	if cfg.Key == "" && !flagJSON {
		printSearchBanner(cfg)
	}
	done := attachProgress(&cfg, os.Stderr)
	res, err := engine.Solve(cmd.Context(), cfg)
	done()
	if err != nil {
		return solveError(err)
	}

	opts := report.PrintOptions{NoColor: noColor, Lines: flagLines}
	switch {
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, res); err != nil {
			return err
		}
	case flagTable:
		report.PrintTable(os.Stdout, res, opts)
	default:
		report.PrintText(os.Stdout, res, opts)
	}
	if report.ShouldFail(res, flagStrict) {
		return fmt.Errorf("%d digest(s) left unresolved", res.Message.Unknown())
	}
	return nil
}

func printSearchBanner(cfg engine.Config) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	_, _ = fmt.Fprintf(os.Stderr, "[*] Starting search on %d workers.\n", threads)
	if cfg.Space.Size() > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[*] Searching space: %s - %s\n",
			cfg.Space.Format(cfg.Space.Start), cfg.Space.Format(cfg.Space.End-1))
	}
}

// solveError prints the classic notices for fatal pipeline outcomes and
// passes the error on for the exit code.
func solveError(err error) error {
	switch {
	case errors.Is(err, engine.ErrNoHashes):
		fmt.Println("No hashes found.")
	case errors.Is(err, keysearch.ErrKeyNotFound):
		fmt.Println("[-] Key not found. Ensure the anchors contain a word in the text.")
	}
	return err
}
