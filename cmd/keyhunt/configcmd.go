package keyhunt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/keyhunt/keyhunt/internal/config"
	"github.com/keyhunt/keyhunt/internal/dictionary"
	"github.com/keyhunt/keyhunt/internal/keysearch"
	"github.com/keyhunt/keyhunt/internal/typo"
)

var (
	cfgOutput string
	cfgGlobal bool
	cfgForce  bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .keyhunt.yml with the built-in defaults",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".keyhunt.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgGlobal, "global", false, "write the global config instead")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	out := cfgOutput
	if cfgGlobal {
		p, err := config.GlobalPath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		out = p
	}
	if _, err := os.Stat(out); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", out)
	}

	space := keysearch.DefaultKeySpace()
	fc := config.FileConfig{
		Threads:    intPtr(flagThreads),
		Anchors:    keysearch.DefaultAnchors,
		Dictionary: []string{dictionary.DefaultPath},
		KeyStart:   &space.Start,
		KeyEnd:     &space.End,
		KeyWidth:   &space.Width,
		Suffixes:   typo.DefaultSuffixes,
		Depth:      intPtr(1),
		NoColor:    boolPtr(flagNoColor),
	}
	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		return err
	}
	fmt.Println("Wrote", out)
	return nil
}

func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
