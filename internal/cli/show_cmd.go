package cli

import (
	"fmt"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/cli/formatter"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/spf13/cobra"
)

type showOptions struct {
	week     int
	selected domain.Trimester
	width    int
}

func newShowCmd(a *App) *cobra.Command {
	week := newWeekFlag(a.cfg().Timeline.DefaultWeek)
	var tri trimesterFlag
	var width int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the timeline for a week",
		Long: `Print the full timeline page: the current-week slider, the trimester
cards, the week-by-week milestones and the risk guide.`,
		Example: `  janani show --week 26
  janani show --week 8 --trimester 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, a, showOptions{
				week:     week.Week(),
				selected: tri.tri,
				width:    width,
			})
		},
	}

	cmd.Flags().Var(week, "week", "Week of pregnancy (1-40)")
	cmd.Flags().Var(&tri, "trimester", "Trimester card to expand (1, 2 or 3)")
	cmd.Flags().IntVar(&width, "width", 0, "Render width (default: terminal width)")

	return cmd
}

func runShow(cmd *cobra.Command, a *App, opts showOptions) error {
	resp, err := a.snapshotUseCase().Snapshot(cmd.Context(), app.TimelineRequest{
		Week:     opts.week,
		Selected: opts.selected,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(resp, a.outputWidth(opts.width)))
	return nil
}
