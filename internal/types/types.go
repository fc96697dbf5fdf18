package types

import "fmt"

// Mode selects which files the scan enumerates.
type Mode string

const (
	ModeStaged  Mode = "staged"
	ModeTracked Mode = "tracked"
)

// ParseMode validates a user supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStaged, ModeTracked:
		return Mode(s), nil
	}
	return "", fmt.Errorf("mode must be 'staged' or 'tracked', got %q", s)
}

// Kind is the outcome of classifying a candidate path.
type Kind int

const (
	Ignored Kind = iota
	ForbiddenDirectory
	ForbiddenExtension
	ScannableText
)

func (k Kind) String() string {
	switch k {
	case ForbiddenDirectory:
		return "forbidden_directory"
	case ForbiddenExtension:
		return "forbidden_extension"
	case ScannableText:
		return "scannable_text"
	default:
		return "ignored"
	}
}

// ReasonKind tells which policy flagged an offender.
type ReasonKind string

const (
	ReasonDirectory ReasonKind = "directory"
	ReasonExtension ReasonKind = "extension"
	ReasonPattern   ReasonKind = "pattern"
)

// Offender is a file flagged by the scan. Each path appears at most once.
type Offender struct {
	Path      string     `json:"path"`
	Kind      ReasonKind `json:"kind"`
	Dir       string     `json:"dir,omitempty"`
	Extension string     `json:"extension,omitempty"`
	Detector  string     `json:"detector,omitempty"`
	Line      int        `json:"line,omitempty"` // first matching line for pattern offenders
}

// Reason renders the human readable reason used in the report.
func (o Offender) Reason() string {
	switch o.Kind {
	case ReasonDirectory:
		dir := o.Dir
		if dir == "" {
			dir = "secrets"
		}
		return "file inside " + dir + "/"
	case ReasonExtension:
		return "banned file extension: " + o.Extension
	default:
		return "matched pattern: " + o.Detector
	}
}

// String formats the offender the way the report lists it.
func (o Offender) String() string {
	return o.Path + " (" + o.Reason() + ")"
}
