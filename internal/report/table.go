package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/keyhunt/keyhunt/internal/engine"
	"github.com/keyhunt/keyhunt/internal/types"
)

// PrintTable prints the key, then one row per digest position that needed
// typo search, resolved or not.
func PrintTable(w io.Writer, res engine.Result, opts PrintOptions) {
	PrintKey(w, res, opts)
	fmt.Fprintln(w)
	fmt.Fprintln(w, messageLine(res, opts))
	fmt.Fprintln(w)

	if len(res.Resolutions)+len(res.Unresolved) == 0 {
		fmt.Fprintln(w, "All digests decoded ✅")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("POSITION", "DIGEST", "STATUS", "CORRUPTED", "INTENDED")
	for i, t := range res.Message.Tokens {
		if t.Status == types.StatusDecoded {
			continue
		}
		intended := t.Intended
		if t.Status == types.StatusUnknown {
			intended = "-"
		}
		_ = table.Append(fmt.Sprint(i+1), short(t.Digest), string(t.Status), t.Word, intended)
	}
	_ = table.Render()
	fmt.Fprintf(w, "\nResolved: %d, unresolved: %d\n", len(res.Resolutions), len(res.Unresolved))
}
