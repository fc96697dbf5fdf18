package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/redactyl/secretscan/internal/types"
)

// Prefix starts every status line.
const Prefix = "[secrets_scan]"

type PrintOptions struct {
	// Color styles the status word. Callers enable it only for terminals.
	Color bool
}

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// PrintText writes the line-oriented report. A clean run prints a single OK
// line to out; otherwise the itemised offender list goes to errOut.
func PrintText(out, errOut io.Writer, offenders []types.Offender, opts PrintOptions) {
	if len(offenders) == 0 {
		fmt.Fprintf(out, "%s %s\n", Prefix, paint(opts, okStyle, "OK"))
		return
	}
	fmt.Fprintf(errOut, "%s %s Potential secrets detected:\n", Prefix, paint(opts, failedStyle, "FAILED."))
	for _, o := range offenders {
		fmt.Fprintf(errOut, "  - %s\n", o)
	}
}

// PrintError reports a fatal setup error.
func PrintError(errOut io.Writer, err error, opts PrintOptions) {
	fmt.Fprintf(errOut, "%s %s %v\n", Prefix, paint(opts, failedStyle, "ERROR:"), err)
}

func paint(opts PrintOptions, s lipgloss.Style, text string) string {
	if !opts.Color {
		return text
	}
	return s.Render(text)
}
