package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/redactyl/secretscan/internal/report"
)

// Report is the decoded form of the JSON document the CLI prints with
// --format json. Derived fields (reason, fingerprint) are not kept.
type Report struct {
	Status    string     `json:"status"`
	Mode      Mode       `json:"mode"`
	Offenders []Offender `json:"offenders"`
	Stats     Stats      `json:"stats"`
}

// Failed reports whether the scan found offenders.
func (r Report) Failed() bool { return r.Status == "failed" }

// WriteReport writes res in the CLI's JSON format.
func WriteReport(w io.Writer, mode Mode, res Result) error {
	return report.WriteJSON(w, mode, res)
}

// ReadReport decodes a document produced by WriteReport or the CLI.
func ReadReport(r io.Reader) (Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	return rep, nil
}
