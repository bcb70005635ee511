package cli

import (
	"fmt"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/cli/formatter"
	"github.com/alexanderramin/janani/internal/export"
	"github.com/spf13/cobra"
)

func newHighlightsCmd(a *App) *cobra.Command {
	week := newWeekFlag(a.cfg().Timeline.DefaultWeek)
	var asJSON bool
	var width int

	cmd := &cobra.Command{
		Use:     "highlights",
		Aliases: []string{"milestones"},
		Short:   "List the week-by-week milestones reached so far",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.snapshotUseCase().Snapshot(cmd.Context(), app.TimelineRequest{Week: week.Week()})
			if err != nil {
				return err
			}
			if asJSON {
				return export.WriteJSON(cmd.OutOrStdout(), resp.Snapshot.Highlights)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHighlights(resp.Snapshot, a.outputWidth(width)))
			return nil
		},
	}

	cmd.Flags().Var(week, "week", "Week of pregnancy (1-40)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the milestones as JSON")
	cmd.Flags().IntVar(&width, "width", 0, "Render width (default: terminal width)")

	return cmd
}
