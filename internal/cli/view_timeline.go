package cli

import (
	"strings"

	"github.com/alexanderramin/janani/internal/cli/formatter"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/timeline"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type timelineKeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	PrevPhase key.Binding
	NextPhase key.Binding
	First     key.Binding
	Last      key.Binding
	Card1     key.Binding
	Card2     key.Binding
	Card3     key.Binding
	Toggle    key.Binding
	Week      key.Binding
	Expand    key.Binding
	Risk      key.Binding
}

func newTimelineKeyMap() timelineKeyMap {
	return timelineKeyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "week")),
		Next:      key.NewBinding(key.WithKeys("right", "l")),
		PrevPhase: key.NewBinding(key.WithKeys("[")),
		NextPhase: key.NewBinding(key.WithKeys("]")),
		First:     key.NewBinding(key.WithKeys("home")),
		Last:      key.NewBinding(key.WithKeys("end")),
		Card1:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1-3", "details")),
		Card2:     key.NewBinding(key.WithKeys("2")),
		Card3:     key.NewBinding(key.WithKeys("3")),
		Toggle:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "current")),
		Week:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "go to week")),
		Expand:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trimester")),
		Risk:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "risk guide")),
	}
}

// timelineView is the interactive pregnancy timeline. It owns the only
// mutable UI state: the current week and the expanded trimester card.
type timelineView struct {
	state *SharedState
	tl    timeline.State
	vp    viewport.Model
	keys  timelineKeyMap
}

func newTimelineView(state *SharedState, week int) *timelineView {
	vp := viewport.New(state.ContentWidth(), state.ContentHeight())
	vp.KeyMap = scrollKeyMap()

	v := &timelineView{
		state: state,
		tl:    timeline.NewState().WithWeek(week),
		vp:    vp,
		keys:  newTimelineKeyMap(),
	}
	v.refresh()
	return v
}

func (v *timelineView) Init() tea.Cmd { return nil }

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = v.state.ContentWidth()
		v.vp.Height = v.state.ContentHeight()
		v.refresh()
		return v, nil

	case setWeekMsg:
		v.setWeek(msg.week)
		return v, nil

	case selectTrimesterMsg:
		v.tl = v.tl.Select(msg.trimester)
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *timelineView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Prev):
		v.moveTo(v.tl.StepWeek(-1))
	case key.Matches(msg, v.keys.Next):
		v.moveTo(v.tl.StepWeek(1))
	case key.Matches(msg, v.keys.PrevPhase):
		v.setWeek(prevPhaseStart(v.tl.CurrentWeek))
	case key.Matches(msg, v.keys.NextPhase):
		v.setWeek(nextPhaseStart(v.tl.CurrentWeek))
	case key.Matches(msg, v.keys.First):
		v.setWeek(domain.MinWeek)
	case key.Matches(msg, v.keys.Last):
		v.setWeek(domain.MaxWeek)
	case key.Matches(msg, v.keys.Card1):
		v.toggle(domain.TrimesterFirst)
	case key.Matches(msg, v.keys.Card2):
		v.toggle(domain.TrimesterSecond)
	case key.Matches(msg, v.keys.Card3):
		v.toggle(domain.TrimesterThird)
	case key.Matches(msg, v.keys.Toggle):
		tri, err := timeline.ClassifyTrimester(v.tl.CurrentWeek)
		if err == nil {
			v.toggle(tri)
		}
	case key.Matches(msg, v.keys.Week):
		return v, pushView(newWeekFormView(v.state, v.tl.CurrentWeek))
	case key.Matches(msg, v.keys.Expand):
		return v, pushView(newTrimesterFormView(v.state, v.tl.Selected))
	case key.Matches(msg, v.keys.Risk):
		return v, pushView(newRiskGuideView(v.state))
	default:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *timelineView) setWeek(week int) {
	v.moveTo(v.tl.WithWeek(week))
}

func (v *timelineView) moveTo(next timeline.State) {
	prev := v.tl.CurrentWeek
	v.tl = next
	if v.tl.CurrentWeek != prev {
		v.state.Logger.Debug("week_changed",
			zap.Int("from", prev),
			zap.Int("to", v.tl.CurrentWeek),
		)
	}
	v.refresh()
}

func (v *timelineView) toggle(t domain.Trimester) {
	v.tl = v.tl.Toggle(t)
	v.state.Logger.Debug("trimester_toggled",
		zap.Int("clicked", int(t)),
		zap.Int("selected", int(v.tl.Selected)),
	)
	v.refresh()
}

// refresh re-derives the snapshot and re-renders the viewport content.
func (v *timelineView) refresh() {
	v.vp.SetContent(v.render())
}

// Snapshot derives the facts currently on screen.
func (v *timelineView) Snapshot() (timeline.Snapshot, error) {
	return timeline.Derive(v.tl)
}

func (v *timelineView) render() string {
	snap, err := v.Snapshot()
	if err != nil {
		return formatter.StyleRed.Render("Error: " + err.Error())
	}
	width := v.state.ContentWidth()

	var b strings.Builder
	b.WriteString(formatter.FormatWeekPanel(snap, width) + "\n\n")
	for _, c := range snap.Cards {
		b.WriteString(formatter.FormatCard(c, width) + "\n")
	}
	b.WriteString("\n" + formatter.FormatHighlights(snap, width))
	return b.String()
}

func (v *timelineView) View() string {
	return v.vp.View()
}

func (v *timelineView) ID() ViewID    { return ViewTimeline }
func (v *timelineView) Title() string { return "Timeline" }

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Prev, v.keys.Card1, v.keys.Toggle, v.keys.Week, v.keys.Expand, v.keys.Risk}
}

// prevPhaseStart returns the first week of the trimester before the one
// containing week, or week 1 from inside the first trimester.
func prevPhaseStart(week int) int {
	tri, err := timeline.ClassifyTrimester(week)
	if err != nil || tri == domain.TrimesterFirst {
		return domain.MinWeek
	}
	p, _ := domain.PhaseFor(tri - 1)
	return p.Weeks.Start
}

// nextPhaseStart returns the first week of the following trimester, or
// week 40 from inside the third trimester.
func nextPhaseStart(week int) int {
	tri, err := timeline.ClassifyTrimester(week)
	if err != nil || tri == domain.TrimesterThird {
		return domain.MaxWeek
	}
	p, _ := domain.PhaseFor(tri + 1)
	return p.Weeks.Start
}

// scrollKeyMap returns a restricted keymap for content viewports.
// Only arrow/page keys scroll; letter keys stay free for view shortcuts.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
