package commands

import (
	"github.com/spf13/cobra"
)

func metricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Print store metrics in the Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.svc.Metrics().WriteText(cmd.OutOrStdout())
		},
	}
}
