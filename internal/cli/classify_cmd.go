package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/cli/formatter"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/export"
	"github.com/spf13/cobra"
)

func newClassifyCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify WEEK",
		Short: "Show the trimester, progress and guidance for a week",
		Example: `  janani classify 12
  janani classify 27 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := weekArg(args[0])
			if err != nil {
				return err
			}
			resp, err := a.classifyUseCase().Classify(cmd.Context(), app.ClassifyRequest{Week: week})
			if err != nil {
				return err
			}
			if asJSON {
				return export.WriteJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClassify(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

// weekArg parses a positional week. Range checks are left to the service
// so the error carries the INVALID_WEEK code.
func weekArg(s string) (int, error) {
	week, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &app.TimelineError{
			Code:    app.ErrInvalidWeek,
			Message: fmt.Sprintf("week %q is not a number", s),
			Err:     domain.ErrWeekOutOfRange,
		}
	}
	return week, nil
}
