package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keyhunt/keyhunt/internal/engine"
	"github.com/keyhunt/keyhunt/internal/types"
)

type PrintOptions struct {
	NoColor bool
	// Lines re-lays the message over the corpus lines instead of one line.
	Lines bool
}

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func paint(s lipgloss.Style, text string, opts PrintOptions) string {
	if opts.NoColor {
		return text
	}
	return s.Render(text)
}

// PrintKey prints the recovered key and search statistics.
func PrintKey(w io.Writer, res engine.Result, opts PrintOptions) {
	if res.KeyProvided {
		fmt.Fprintf(w, "%s %s (supplied)\n", paint(goodStyle, "[+] KEY:", opts), res.Key)
		return
	}
	fmt.Fprintf(w, "%s %s\n", paint(goodStyle, "[+] KEY FOUND:", opts), res.Key)
	ks := res.KeyStats
	fmt.Fprintf(w, "[+] Time taken: %.2f seconds\n", ks.Duration.Seconds())
	if ks.Tested > 0 {
		fmt.Fprintf(w, "[+] Keys tested: %d on %d workers\n", ks.Tested, ks.Workers)
	}
}

// PrintText prints a full run in the classic layout: key, decoded message
// block, then one SOLVED block per repaired digest.
func PrintText(w io.Writer, res engine.Result, opts PrintOptions) {
	PrintKey(w, res, opts)
	fmt.Fprintln(w)
	if res.DictionaryFallback {
		fmt.Fprintln(w, paint(badStyle, "[-] Dictionary not found. Using small fallback.", opts))
	}
	fmt.Fprintf(w, "[*] Dictionary: %d words, lookup table: %d digests\n", res.DictionarySize, res.LookupSize)

	fmt.Fprintln(w)
	fmt.Fprintln(w, paint(headingStyle, "--- DECODED MESSAGE ---", opts))
	if opts.Lines {
		for _, l := range res.Reconstructed() {
			fmt.Fprintln(w, l)
		}
	} else {
		fmt.Fprintln(w, messageLine(res, opts))
	}
	fmt.Fprintln(w, paint(headingStyle, "-----------------------", opts))

	switch n := len(res.Resolutions) + len(res.Unresolved); {
	case n == 0:
	case res.TyposSkipped:
		fmt.Fprintln(w)
		fmt.Fprintf(w, "[*] Found %d unknown word(s). Typo search skipped.\n", n)
	default:
		fmt.Fprintln(w)
		fmt.Fprintf(w, "[*] Found %d unknown word(s). Analyzing...\n", n)
		PrintResolutions(w, res.Resolutions, res.Unresolved, opts)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Digests: %d (decoded: %d, typos: %d, unknown: %d)\n",
		res.Digests, count(res, types.StatusDecoded), count(res, types.StatusTypo), res.Message.Unknown())
	fmt.Fprintf(w, "Run duration: %.2fs\n", res.Duration.Seconds())
}

// PrintResolutions prints a SOLVED block per resolution and a failure notice
// per unresolved digest.
func PrintResolutions(w io.Writer, res []types.TypoResolution, unresolved []string, opts PrintOptions) {
	for _, r := range res {
		fmt.Fprintln(w)
		fmt.Fprintln(w, paint(goodStyle, "[!!!] SOLVED:", opts))
		fmt.Fprintf(w, "      Misspelled Word: '%s'\n", r.Corrupted)
		fmt.Fprintf(w, "      Intended Word:   '%s'\n", r.Intended)
	}
	for _, d := range unresolved {
		fmt.Fprintln(w, paint(badStyle, fmt.Sprintf("[-] %s... failed to resolve", short(d)), opts))
	}
}

func messageLine(res engine.Result, opts PrintOptions) string {
	words := res.Message.Words()
	if !opts.NoColor {
		for i, t := range res.Message.Tokens {
			if t.Status == types.StatusUnknown {
				words[i] = paint(unknownStyle, t.Word, opts)
			}
		}
	}
	return strings.Join(words, " ")
}

func count(res engine.Result, s types.Status) int {
	n := 0
	for _, t := range res.Message.Tokens {
		if t.Status == s {
			n++
		}
	}
	return n
}

func short(d string) string {
	if len(d) <= 10 {
		return d
	}
	return d[:10]
}

// ShouldFail reports whether a run should exit non-zero. Partial results
// succeed unless strict is set.
func ShouldFail(res engine.Result, strict bool) bool {
	return strict && !res.Solved()
}
