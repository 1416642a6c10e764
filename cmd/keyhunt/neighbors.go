package keyhunt

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/keyhunt/keyhunt/internal/edits"
)

var flagList bool

func init() {
	cmd := &cobra.Command{
		Use:   "neighbors WORD",
		Short: "Show the edit neighborhood of a word",
		Args:  cobra.ExactArgs(1),
		RunE:  runNeighbors,
	}
	cmd.Flags().BoolVar(&flagList, "list", false, "print every member, one per line")
	rootCmd.AddCommand(cmd)
}

func runNeighbors(_ *cobra.Command, args []string) error {
	lcfg, gcfg := fileConfigs()
	word := args[0]
	abc := alphabet(lcfg, gcfg)
	if abc == nil {
		abc = edits.ASCIILetters
	}
	depth := flagDepth
	if depth == 0 {
		depth = 1
	}
	set, err := edits.Neighbors(word, abc, depth)
	if err != nil {
		return err
	}
	switch {
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	case flagList:
		for _, s := range set {
			fmt.Println(s)
		}
	default:
		fmt.Printf("%s: %d candidates at depth %d over %d letters", word, len(set), depth, len(abc))
		if depth == 1 {
			fmt.Printf(" (upper bound %d)", edits.UpperBound(utf8.RuneCountInString(word), len(abc)))
		}
		fmt.Println()
	}
	return nil
}
