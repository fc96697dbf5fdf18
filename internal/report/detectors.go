package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/redactyl/secretscan/internal/detectors"
)

// PrintDetectors renders the detector table in evaluation order.
func PrintDetectors(w io.Writer, ds []detectors.Detector) error {
	table := tablewriter.NewWriter(w)
	table.Header("Order", "Label", "Pattern")
	for i, d := range ds {
		if err := table.Append([]string{strconv.Itoa(i + 1), d.Label, d.Pattern.String()}); err != nil {
			return err
		}
	}
	return table.Render()
}
