package secretscan

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/redactyl/secretscan/internal/detectors"
	"github.com/redactyl/secretscan/internal/report"
)

func newDetectorsCmd(stdout io.Writer) *cobra.Command {
	var labelsOnly bool
	cmd := &cobra.Command{
		Use:   "detectors",
		Short: "List content detectors in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if labelsOnly {
				for _, label := range detectors.Labels() {
					if _, err := io.WriteString(stdout, label+"\n"); err != nil {
						return err
					}
				}
				return nil
			}
			return report.PrintDetectors(stdout, detectors.All())
		},
	}
	cmd.Flags().BoolVar(&labelsOnly, "labels", false, "print labels only, one per line")
	return cmd
}
