package cli

import (
	"context"
	"fmt"

	"github.com/askewbot/askew-trainer/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently saved expansions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.Journal == nil {
				fmt.Fprintln(out, formatter.Dim("Journal is disabled (ASKEW_TRAINER_JOURNAL=off)."))
				return nil
			}
			runs, err := app.Journal.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatHistory(runs, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}
