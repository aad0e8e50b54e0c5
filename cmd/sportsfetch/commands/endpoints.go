package commands

import (
	"fmt"

	"github.com/greenbier/sportsfetch/internal/api"
	"github.com/spf13/cobra"
)

func installEndpointsCmd(app *App) {
	endpointsCmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the polled endpoints in their fetch order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range api.Endpoints {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s/%s\n", e.Name, app.config.BaseURL, e.Path)
			}
			return nil
		},
	}

	app.cmd.AddCommand(endpointsCmd)
}
