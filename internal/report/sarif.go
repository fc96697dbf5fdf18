package report

import (
	"encoding/json"
	"io"

	"github.com/redactyl/secretscan/internal/detectors"
	"github.com/redactyl/secretscan/internal/types"
)

const (
	RuleForbiddenDirectory = "FORBIDDEN_DIRECTORY"
	RuleBannedExtension    = "BANNED_EXTENSION"
)

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Results     []sarifResult     `json:"results"`
	VersionCtrl []sarifVCSDetails `json:"versionControlProvenance,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID       string            `json:"ruleId"`
	Level        string            `json:"level"`
	Message      sarifMessage      `json:"message"`
	Locations    []sarifLoc        `json:"locations"`
	Fingerprints map[string]string `json:"partialFingerprints"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt     `json:"artifactLocation"`
	Region           *sarifRegion `json:"region,omitempty"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

type sarifVCSDetails struct {
	RepositoryURI string `json:"repositoryUri"`
	RevisionID    string `json:"revisionId,omitempty"`
	Branch        string `json:"branch,omitempty"`
}

// SARIFOptions carries tool and repository metadata. Empty repository fields
// omit versionControlProvenance.
type SARIFOptions struct {
	ToolVersion string
	RepoURI     string
	Revision    string
	Branch      string
}

// RuleID maps an offender to its SARIF rule.
func RuleID(o types.Offender) string {
	switch o.Kind {
	case types.ReasonDirectory:
		return RuleForbiddenDirectory
	case types.ReasonExtension:
		return RuleBannedExtension
	default:
		return o.Detector
	}
}

// WriteSARIF writes offenders as SARIF 2.1.0 to the provided writer.
func WriteSARIF(w io.Writer, offenders []types.Offender, opts SARIFOptions) error {
	rules := []sarifRule{
		{ID: RuleForbiddenDirectory, ShortDescription: sarifMessage{Text: "file inside a reserved secrets directory"}},
		{ID: RuleBannedExtension, ShortDescription: sarifMessage{Text: "private key or keystore file extension"}},
	}
	for _, label := range detectors.Labels() {
		rules = append(rules, sarifRule{ID: label, ShortDescription: sarifMessage{Text: "content matched " + label}})
	}
	run := sarifRun{
		Tool:    sarifTool{Driver: sarifDriver{Name: "secretscan", Version: opts.ToolVersion, Rules: rules}},
		Results: []sarifResult{},
	}
	if opts.RepoURI != "" {
		run.VersionCtrl = []sarifVCSDetails{{RepositoryURI: opts.RepoURI, RevisionID: opts.Revision, Branch: opts.Branch}}
	}
	for _, o := range offenders {
		phys := sarifPhys{ArtifactLocation: sarifArt{URI: o.Path}}
		if o.Line > 0 {
			phys.Region = &sarifRegion{StartLine: o.Line}
		}
		run.Results = append(run.Results, sarifResult{
			RuleID:       RuleID(o),
			Level:        "error",
			Message:      sarifMessage{Text: o.Reason()},
			Locations:    []sarifLoc{{PhysicalLocation: phys}},
			Fingerprints: map[string]string{"secretscan/v1": Fingerprint(o)},
		})
	}
	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
