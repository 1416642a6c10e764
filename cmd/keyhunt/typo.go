package keyhunt

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keyhunt/keyhunt/internal/corpus"
	"github.com/keyhunt/keyhunt/internal/engine"
	"github.com/keyhunt/keyhunt/internal/lookup"
	"github.com/keyhunt/keyhunt/internal/report"
	"github.com/keyhunt/keyhunt/internal/types"
	"github.com/keyhunt/keyhunt/internal/typo"
)

var (
	flagTypoKey   string
	flagTypoWords []string
)

func init() {
	cmd := &cobra.Command{
		Use:   "typo [puzzle.txt] --key KEY --word WORD",
		Short: "Deep-search the corpus for misspellings of specific words",
		Long: `typo hashes every 1- and 2-edit variant of the given words (and each variant
followed by a punctuation mark) under a known key and reports which corpus
digests they reproduce. Digests of the correctly spelled words are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTypo,
	}
	cmd.Flags().StringVar(&flagTypoKey, "key", "", "known key (required)")
	cmd.Flags().StringSliceVarP(&flagTypoWords, "word", "w", nil, "intended word to search around (repeatable)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("word")
	rootCmd.AddCommand(cmd)
}

type typoJSON struct {
	Key         types.Key              `json:"key"`
	Words       []string               `json:"words"`
	Depth       int                    `json:"depth"`
	Resolutions []types.TypoResolution `json:"resolutions"`
	Candidates  uint64                 `json:"candidates"`
}

func runTypo(cmd *cobra.Command, args []string) error {
	key := types.Key(flagTypoKey)
	if err := engine.CheckKey(key); err != nil {
		return err
	}
	lcfg, gcfg := fileConfigs()
	c, err := corpus.Load(inputPath(args))
	if err != nil {
		return err
	}
	if len(c.Digests) == 0 {
		return solveError(engine.ErrNoHashes)
	}
	depth := flagDepth
	if depth == 0 {
		depth = 2
	}

	exact := lookup.Build(key, flagTypoWords, nil)
	var targets []string
	for _, d := range c.Digests {
		if _, ok := exact.Lookup(d); !ok {
			targets = append(targets, d)
		}
	}

	if !flagJSON {
		_, _ = fmt.Fprintf(os.Stderr, "[*] Generating all edits up to depth %d for '%s'...\n", depth, strings.Join(flagTypoWords, "', '"))
	}
	res, err := typo.ResolveAll(cmd.Context(), targets, flagTypoWords, key, typo.Options{
		Alphabet:   alphabet(lcfg, gcfg),
		Suffixes:   pickStrings(flagSuffixes, lcfg.Suffixes, gcfg.Suffixes),
		NoSuffixes: flagNoSuffixes,
		Depth:      depth,
		MinLength:  1,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		out := typoJSON{Key: key, Words: flagTypoWords, Depth: depth, Resolutions: res.Resolved, Candidates: res.Candidates}
		if out.Resolutions == nil {
			out.Resolutions = []types.TypoResolution{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	noColor := colorDisabled(pickBool(false, lcfg.NoColor, gcfg.NoColor))
	fmt.Println(strings.Repeat("=", 60))
	if len(res.Resolved) == 0 {
		fmt.Printf("[*] Failed to find a %d-edit typo for '%s'.\n", depth, strings.Join(flagTypoWords, "', '"))
		fmt.Println(strings.Repeat("=", 60))
		return fmt.Errorf("%w: no variant of %s matched", typo.ErrUnresolved, strings.Join(flagTypoWords, ", "))
	}
	report.PrintResolutions(os.Stdout, res.Resolved, nil, report.PrintOptions{NoColor: noColor})
	fmt.Printf("\n[*] %d candidates hashed\n", res.Candidates)
	fmt.Println(strings.Repeat("=", 60))
	return nil
}
