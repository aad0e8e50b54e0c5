package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/greenbier/sportsfetch/internal/dailylog"
	"github.com/greenbier/sportsfetch/internal/easterntime"
	"github.com/spf13/cobra"
)

func installShowCmd(app *App) {
	showCmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Print the daily JSON file for an Eastern date (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := easterntime.DateKey(time.Now())
			if len(args) == 1 {
				if _, err := time.Parse(easterntime.DateLayout, args[0]); err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %v", args[0], err)
				}
				date = args[0]
			}

			store, err := dailylog.New(slog.Default(), app.config.DataDir)
			if err != nil {
				return fmt.Errorf("failed to open daily log store: %w", err)
			}

			f, err := store.Read(date)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(f, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal daily file: %v", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	app.cmd.AddCommand(showCmd)
}
