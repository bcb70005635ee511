package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/janani/internal/cli/formatter"
	"github.com/alexanderramin/janani/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// jananiHuhTheme returns a huh theme in the timeline's teal accent.
func jananiHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: teal accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorAqua).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorPink)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorAqua).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorPink)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorAqua)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateWeek is the huh validator for week inputs.
func validateWeek(s string) error {
	_, err := parseWeek(s)
	return err
}

// newWeekFormView asks for a week and moves the slider there.
func newWeekFormView(state *SharedState, current int) *wizardView {
	input := strconv.Itoa(current)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which week?").
				Description("Week of pregnancy, 1 to 40").
				CharLimit(2).
				Value(&input).
				Validate(validateWeek),
		),
	).WithTheme(jananiHuhTheme()).WithShowHelp(false)

	note := fmt.Sprintf("Cancelled: still at week %d.", current)
	return newWizardView(state, formWeek, form, note, weekFormDone(&input))
}

// weekFormDone turns the validated input into a setWeekMsg.
func weekFormDone(input *string) func() tea.Cmd {
	return func() tea.Cmd {
		week, err := parseWeek(*input)
		if err != nil {
			return flash(formatter.StyleRed.Render(err.Error()))
		}
		return func() tea.Msg { return setWeekMsg{week: week} }
	}
}

// newTrimesterFormView picks which trimester card to expand.
func newTrimesterFormView(state *SharedState, selected domain.Trimester) *wizardView {
	choice := selected
	options := []huh.Option[domain.Trimester]{
		huh.NewOption("Collapse all", domain.NoTrimester),
	}
	for _, p := range domain.Phases() {
		label := formatter.PhaseIcon(p.Trimester) + " " + p.Title + " (" + p.Weeks.String() + ")"
		options = append(options, huh.NewOption(label, p.Trimester))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Trimester]().
				Title("Which trimester?").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(jananiHuhTheme()).WithShowHelp(false)

	note := "Cancelled: no card expanded."
	if selected.Valid() {
		note = fmt.Sprintf("Cancelled: %s stays expanded.", selected)
	}
	return newWizardView(state, formTrimester, form, note, trimesterFormDone(&choice))
}

func trimesterFormDone(choice *domain.Trimester) func() tea.Cmd {
	return func() tea.Cmd {
		t := *choice
		return func() tea.Msg { return selectTrimesterMsg{trimester: t} }
	}
}
