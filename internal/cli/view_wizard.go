package cli

import (
	"github.com/alexanderramin/janani/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

// formKind names the question a form view asks about the timeline.
type formKind int

const (
	formWeek formKind = iota
	formTrimester
)

func (k formKind) String() string {
	if k == formTrimester {
		return "trimester"
	}
	return "week"
}

func (k formKind) title() string {
	if k == formTrimester {
		return "Trimester"
	}
	return "Go to Week"
}

type formKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func newFormKeyMap(kind formKind) formKeyMap {
	confirm := "move slider"
	if kind == formTrimester {
		confirm = "expand card"
	}
	return formKeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", confirm)),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// wizardView hosts a huh form on the view stack. Submitting pops the form
// and hands the done command to the timeline; esc pops it and flashes
// cancelNote, which says what stayed the same.
type wizardView struct {
	state      *SharedState
	kind       formKind
	form       *huh.Form
	keys       formKeyMap
	cancelNote string
	done       func() tea.Cmd
}

func newWizardView(state *SharedState, kind formKind, form *huh.Form, cancelNote string, done func() tea.Cmd) *wizardView {
	return &wizardView{
		state:      state,
		kind:       kind,
		form:       form,
		keys:       newFormKeyMap(kind),
		cancelNote: cancelNote,
		done:       done,
	}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, v.keys.Cancel) {
		v.state.Logger.Debug("form_cancelled", zap.Stringer("form", v.kind))
		note := formatter.Dim(v.cancelNote)
		return v, func() tea.Msg { return wizardCompleteOutput(note) }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State != huh.StateCompleted {
		return v, cmd
	}

	v.state.Logger.Debug("form_submitted", zap.Stringer("form", v.kind))
	var apply tea.Cmd
	if v.done != nil {
		apply = v.done()
	}
	return v, func() tea.Msg {
		return wizardCompleteMsg{nextCmd: tea.Batch(cmd, apply)}
	}
}

func (v *wizardView) View() string {
	return v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.kind.title() }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Confirm, v.keys.Cancel}
}
