package report

import (
	"encoding/json"
	"io"

	"github.com/keyhunt/keyhunt/internal/engine"
	"github.com/keyhunt/keyhunt/internal/types"
)

// JSONReport is the machine-readable shape of a run.
type JSONReport struct {
	Input       string                 `json:"input"`
	Fingerprint string                 `json:"fingerprint"`
	Key         types.Key              `json:"key"`
	KeyProvided bool                   `json:"key_provided,omitempty"`
	KeysTested  uint64                 `json:"keys_tested,omitempty"`
	Dictionary  int                    `json:"dictionary_words"`
	Fallback    bool                   `json:"dictionary_fallback,omitempty"`
	Message     string                 `json:"message"`
	Tokens      []types.Token          `json:"tokens"`
	Resolutions []types.TypoResolution `json:"resolutions"`
	Unresolved  []string               `json:"unresolved"`
	TyposSkip   bool                   `json:"typos_skipped,omitempty"`
	Solved      bool                   `json:"solved"`
	DurationMS  int64                  `json:"duration_ms"`
}

// NewJSONReport flattens a Result.
func NewJSONReport(res engine.Result) JSONReport {
	r := JSONReport{
		Input:       res.Input,
		Fingerprint: res.Fingerprint,
		Key:         res.Key,
		KeyProvided: res.KeyProvided,
		KeysTested:  res.KeyStats.Tested,
		Dictionary:  res.DictionarySize,
		Fallback:    res.DictionaryFallback,
		Message:     res.Message.String(),
		Tokens:      res.Message.Tokens,
		Resolutions: res.Resolutions,
		Unresolved:  res.Unresolved,
		TyposSkip:   res.TyposSkipped,
		Solved:      res.Solved(),
		DurationMS:  res.Duration.Milliseconds(),
	}
	if r.Tokens == nil {
		r.Tokens = []types.Token{}
	}
	if r.Resolutions == nil {
		r.Resolutions = []types.TypoResolution{}
	}
	if r.Unresolved == nil {
		r.Unresolved = []string{}
	}
	return r
}

// WriteJSON pretty-prints res as a JSONReport.
func WriteJSON(w io.Writer, res engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONReport(res))
}
