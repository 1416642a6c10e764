package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyhunt/keyhunt/internal/decode"
	"github.com/keyhunt/keyhunt/internal/engine"
	"github.com/keyhunt/keyhunt/internal/keysearch"
	"github.com/keyhunt/keyhunt/internal/types"
)

var (
	dQuick = strings.Repeat("a", 64)
	dLost  = strings.Repeat("b", 64)
	dThe   = strings.Repeat("c", 64)
)

func sample() engine.Result {
	return engine.Result{
		Input:          "puzzle.txt",
		Fingerprint:    "0123456789abcdef",
		Lines:          []string{dThe + " " + dQuick, "  " + dLost},
		Digests:        3,
		Key:            "049677629",
		KeyStats:       keysearch.Result{Key: "049677629", Tested: 49677630, Workers: 8, Duration: 1500 * time.Millisecond},
		DictionarySize: 5,
		LookupSize:     5,
		Message: decode.Message{Tokens: []types.Token{
			{Digest: dThe, Word: "the", Status: types.StatusDecoded},
			{Digest: dQuick, Word: "qiuck", Intended: "quick", Status: types.StatusTypo},
			{Digest: dLost, Word: types.Placeholder, Status: types.StatusUnknown},
		}},
		Resolutions: []types.TypoResolution{{Digest: dQuick, Corrupted: "qiuck", Intended: "quick", Depth: 1}},
		Unresolved:  []string{dLost},
		Duration:    2 * time.Second,
	}
}

func TestPrintText_Layout(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sample(), PrintOptions{NoColor: true})
	out := buf.String()
	assert.Contains(t, out, "[+] KEY FOUND: 049677629")
	assert.Contains(t, out, "[+] Time taken: 1.50 seconds")
	assert.Contains(t, out, "--- DECODED MESSAGE ---\nthe qiuck UNKNOWN\n-----------------------")
	assert.Contains(t, out, "[*] Found 2 unknown word(s). Analyzing...")
	assert.Contains(t, out, "[!!!] SOLVED:\n      Misspelled Word: 'qiuck'\n      Intended Word:   'quick'")
	assert.Contains(t, out, "[-] bbbbbbbbbb... failed to resolve")
	assert.Contains(t, out, "Digests: 3 (decoded: 1, typos: 1, unknown: 1)")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrintText_Lines(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sample(), PrintOptions{NoColor: true, Lines: true})
	assert.Contains(t, buf.String(), "--- DECODED MESSAGE ---\nthe qiuck\n  UNKNOWN\n")
}

func TestPrintText_SuppliedKeyAndFallback(t *testing.T) {
	res := sample()
	res.KeyProvided = true
	res.KeyStats = keysearch.Result{}
	res.DictionaryFallback = true
	var buf bytes.Buffer
	PrintText(&buf, res, PrintOptions{NoColor: true})
	out := buf.String()
	assert.Contains(t, out, "[+] KEY: 049677629 (supplied)")
	assert.NotContains(t, out, "Time taken")
	assert.Contains(t, out, "Using small fallback")
}

func TestPrintText_TyposSkipped(t *testing.T) {
	res := sample()
	res.Resolutions = nil
	res.Unresolved = []string{dQuick, dLost}
	res.TyposSkipped = true
	var buf bytes.Buffer
	PrintText(&buf, res, PrintOptions{NoColor: true})
	out := buf.String()
	assert.Contains(t, out, "[*] Found 2 unknown word(s). Typo search skipped.")
	assert.NotContains(t, out, "Analyzing")
	assert.NotContains(t, out, "failed to resolve")

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, res))
	assert.Contains(t, buf.String(), `"typos_skipped": true`)
}

func TestPrintTable_Rows(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample(), PrintOptions{NoColor: true})
	out := buf.String()
	assert.Contains(t, out, "CORRUPTED")
	assert.Contains(t, out, "qiuck")
	assert.Contains(t, out, "quick")
	assert.Contains(t, out, "aaaaaaaaaa")
	assert.Contains(t, out, "unknown")
	assert.NotContains(t, out, "cccccccccc", "decoded rows are omitted")
	assert.Contains(t, out, "Resolved: 1, unresolved: 1")
}

func TestPrintTable_AllDecoded(t *testing.T) {
	res := sample()
	res.Message.Tokens = res.Message.Tokens[:1]
	res.Resolutions, res.Unresolved = nil, nil
	var buf bytes.Buffer
	PrintTable(&buf, res, PrintOptions{NoColor: true})
	assert.Contains(t, buf.String(), "All digests decoded")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample()))
	var got JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, types.Key("049677629"), got.Key)
	assert.Equal(t, "the qiuck UNKNOWN", got.Message)
	assert.Equal(t, uint64(49677630), got.KeysTested)
	assert.Len(t, got.Tokens, 3)
	assert.Equal(t, []string{dLost}, got.Unresolved)
	assert.False(t, got.Solved)
	assert.Equal(t, int64(2000), got.DurationMS)
}

func TestWriteJSON_EmptyListsNotNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, engine.Result{Key: "000000001"}))
	out := buf.String()
	assert.Contains(t, out, `"resolutions": []`)
	assert.Contains(t, out, `"unresolved": []`)
	assert.Contains(t, out, `"tokens": []`)
}

func TestShouldFail(t *testing.T) {
	res := sample()
	assert.False(t, ShouldFail(res, false))
	assert.True(t, ShouldFail(res, true))
	res.Message.Tokens = res.Message.Tokens[:2]
	assert.False(t, ShouldFail(res, true))
}
