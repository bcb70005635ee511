package cli

import (
	"github.com/alexanderramin/janani/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// cmdOutputMsg carries a transient line shown under the active view until
// the next key press.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// setWeekMsg moves the timeline slider to week.
type setWeekMsg struct {
	week int
}

// selectTrimesterMsg expands the card for trimester. NoTrimester
// collapses every card.
type selectTrimesterMsg struct {
	trimester domain.Trimester
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// flash returns a tea.Cmd that shows output under the active view.
func flash(output string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: output} }
}

// wizardCompleteOutput pops the wizard and flashes output.
func wizardCompleteOutput(output string) wizardCompleteMsg {
	return wizardCompleteMsg{nextCmd: flash(output)}
}
