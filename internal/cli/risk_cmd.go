package cli

import (
	"fmt"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/cli/formatter"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/export"
	"github.com/spf13/cobra"
)

func newRiskCmd(a *App) *cobra.Command {
	var asJSON, asMarkdown bool
	var width int

	cmd := &cobra.Command{
		Use:   "risk [LEVEL]",
		Short: "Show the pregnancy risk classification guide",
		Long: `Show the traffic-light risk guide used by ASHA workers. LEVEL narrows
the guide to one tier: low, medium or high (or green, yellow, red).`,
		Example: `  janani risk
  janani risk red
  janani risk --markdown`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"low", "medium", "high", "green", "yellow", "red"},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.RiskGuideRequest{}
			if len(args) == 1 {
				level, err := domain.ParseRiskLevel(args[0])
				if err != nil {
					return &app.TimelineError{Code: app.ErrInvalidRiskLevel, Message: err.Error(), Err: err}
				}
				req.Level = level
			}

			resp, err := a.riskGuideUseCase().Guide(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return export.WriteJSON(out, resp)
			case asMarkdown:
				cfg := a.cfg().Display
				rendered, err := formatter.RenderMarkdown(export.RiskGuideMarkdown(resp), cfg.MarkdownStyle, cfg.WordWrap)
				if err != nil {
					return err
				}
				fmt.Fprint(out, rendered)
			default:
				fmt.Fprint(out, formatter.FormatRiskGuide(resp, a.outputWidth(width)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the guide as JSON")
	cmd.Flags().BoolVar(&asMarkdown, "markdown", false, "Render the guide as styled markdown")
	cmd.Flags().IntVar(&width, "width", 0, "Render width (default: terminal width)")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	return cmd
}
