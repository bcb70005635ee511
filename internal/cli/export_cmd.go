package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/cli/formatter"
	"github.com/alexanderramin/janani/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(a *App) *cobra.Command {
	week := newWeekFlag(a.cfg().Timeline.DefaultWeek)
	var tri trimesterFlag
	var formatName, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the timeline as JSON, YAML, Markdown, SVG or HTML",
		Long: `Export the timeline page for a week. The format comes from --format,
or from the extension of --out. Without --out the document goes to stdout.`,
		Example: `  janani export --week 26 --format json
  janani export --week 8 --trimester 1 --out week8.html
  janani export --out timeline.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(formatName, outPath)
			if err != nil {
				return err
			}

			resp, err := a.snapshotUseCase().Snapshot(cmd.Context(), app.TimelineRequest{
				Week:     week.Week(),
				Selected: tri.tri,
			})
			if err != nil {
				return err
			}

			if outPath == "" {
				return export.Write(cmd.OutOrStdout(), format, resp)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := export.Write(f, format, resp); err != nil {
				f.Close()
				os.Remove(outPath)
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", outPath, err)
			}

			a.logger().Info("timeline exported",
				zap.String("path", outPath),
				zap.String("format", string(format)),
				zap.Int("week", resp.Snapshot.CurrentWeek),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported week %d as %s to %s\n",
				formatter.StyleGreen.Render("✔"), resp.Snapshot.CurrentWeek, format, outPath)
			return nil
		},
	}

	cmd.Flags().Var(week, "week", "Week of pregnancy (1-40)")
	cmd.Flags().Var(&tri, "trimester", "Trimester card to expand (1, 2 or 3)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: json, yaml, md, svg, html")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}

// resolveFormat prefers an explicit --format, then the --out extension,
// then JSON.
func resolveFormat(name, outPath string) (export.Format, error) {
	switch {
	case name != "":
		return export.ParseFormat(name)
	case outPath != "":
		return export.FormatFromPath(outPath)
	default:
		return export.FormatJSON, nil
	}
}
