package report

import (
	"encoding/json"
	"io"

	"github.com/redactyl/secretscan/internal/engine"
	"github.com/redactyl/secretscan/internal/types"
)

type jsonOffender struct {
	types.Offender
	Reason      string `json:"reason"`
	Fingerprint string `json:"fingerprint"`
}

type jsonReport struct {
	Status    string         `json:"status"`
	Mode      types.Mode     `json:"mode"`
	Offenders []jsonOffender `json:"offenders"`
	Stats     engine.Stats   `json:"stats"`
}

// WriteJSON writes a machine-readable report. Offenders is never null.
func WriteJSON(w io.Writer, mode types.Mode, res engine.Result) error {
	doc := jsonReport{Status: "ok", Mode: mode, Offenders: []jsonOffender{}, Stats: res.Stats}
	if len(res.Offenders) > 0 {
		doc.Status = "failed"
	}
	for _, o := range res.Offenders {
		doc.Offenders = append(doc.Offenders, jsonOffender{Offender: o, Reason: o.Reason(), Fingerprint: Fingerprint(o)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
