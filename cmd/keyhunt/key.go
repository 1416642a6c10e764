package keyhunt

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/keyhunt/keyhunt/internal/engine"
	"github.com/keyhunt/keyhunt/internal/report"
	"github.com/keyhunt/keyhunt/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "key [puzzle.txt]",
		Short: "Recover the key only, without decoding",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runKey,
	}
	rootCmd.AddCommand(cmd)
}

type keyJSON struct {
	Key        types.Key `json:"key"`
	Tested     uint64    `json:"keys_tested"`
	Workers    int       `json:"workers"`
	DurationMS int64     `json:"duration_ms"`
}

func runKey(cmd *cobra.Command, args []string) error {
	lcfg, gcfg := fileConfigs()
	cfg := engineConfig(inputPath(args), lcfg, gcfg)
	cfg.KeyOnly = true
	if !flagJSON {
		printSearchBanner(cfg)
	}
	done := attachProgress(&cfg, os.Stderr)
	res, err := engine.Solve(cmd.Context(), cfg)
	done()
	if err != nil {
		return solveError(err)
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(keyJSON{
			Key:        res.Key,
			Tested:     res.KeyStats.Tested,
			Workers:    res.KeyStats.Workers,
			DurationMS: res.KeyStats.Duration.Milliseconds(),
		})
	}
	noColor := colorDisabled(pickBool(false, lcfg.NoColor, gcfg.NoColor))
	report.PrintKey(os.Stdout, res, report.PrintOptions{NoColor: noColor})
	return nil
}
