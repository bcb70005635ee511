package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(a *App) *cobra.Command {
	week := newWeekFlag(a.cfg().Timeline.DefaultWeek)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive timeline",
		Long: `Open the interactive timeline. Move the slider with ←/→, jump between
trimesters with [ and ], and press 1-3 to expand a trimester card.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, a, week.Week())
		},
	}

	cmd.Flags().Var(week, "week", "Week to open at (1-40)")

	return cmd
}

func runTUI(cmd *cobra.Command, a *App, week int) error {
	p := tea.NewProgram(
		newAppModel(a, week),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
