package commands

import (
	"github.com/spf13/cobra"
)

func dashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show users, products, pending orders and sales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.svc.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			renderDashboard(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}
