package core

import (
	"encoding/json"
	"io"

	"github.com/keyhunt/keyhunt/internal/report"
)

// Report is the JSON shape written by MarshalResult.
type Report = report.JSONReport

// MarshalResult pretty-prints a run as JSON for humans or pipelines.
func MarshalResult(w io.Writer, res Result) error {
	return report.WriteJSON(w, res)
}

// UnmarshalReport decodes a report written by MarshalResult.
func UnmarshalReport(r io.Reader) (Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}
