package cli

import (
	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/config"
	"github.com/alexanderramin/janani/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Timeline service.TimelineService
	Risk     service.RiskGuideService

	// Use-case overrides; nil falls back to the services above.
	ShowTimeline app.SnapshotUseCase
	ClassifyWeek app.ClassifyUseCase
	RiskGuide    app.RiskGuideUseCase

	Config *config.Config
	Logger *zap.Logger

	// IsInteractive reports whether stdin and stdout are terminals. The bare
	// `janani` command opens the TUI when it returns true.
	IsInteractive func() bool

	// TermWidth reports the output terminal width, or 0 when unknown.
	TermWidth func() int
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) cfg() *config.Config {
	if a.Config == nil {
		a.Config = config.Default()
	}
	return a.Config
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "janani" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	week := newWeekFlag(app.cfg().Timeline.DefaultWeek)

	root := &cobra.Command{
		Use:           "janani",
		Short:         "Pregnancy journey timeline for ASHA workers and expecting mothers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd, app, week.Week())
			}
			return runShow(cmd, app, showOptions{week: week.Week()})
		},
	}
	root.Flags().Var(week, "week", "Week of pregnancy to open at (1-40)")

	root.AddCommand(
		newTUICmd(app),
		newShowCmd(app),
		newClassifyCmd(app),
		newHighlightsCmd(app),
		newRiskCmd(app),
		newExportCmd(app),
	)

	return root
}
