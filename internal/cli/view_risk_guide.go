package cli

import (
	"context"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/cli/formatter"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type riskGuideKeyMap struct {
	All    key.Binding
	Low    key.Binding
	Medium key.Binding
	High   key.Binding
	Back   key.Binding
}

func newRiskGuideKeyMap() riskGuideKeyMap {
	return riskGuideKeyMap{
		All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		Low:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g/y/r", "card")),
		Medium: key.NewBinding(key.WithKeys("y")),
		High:   key.NewBinding(key.WithKeys("r")),
		Back:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timeline")),
	}
}

// riskGuideView shows the traffic-light risk guide, optionally narrowed to
// one card color.
type riskGuideView struct {
	state *SharedState
	level domain.RiskLevel // empty shows every tier
	vp    viewport.Model
	keys  riskGuideKeyMap
}

func newRiskGuideView(state *SharedState) *riskGuideView {
	vp := viewport.New(state.ContentWidth(), state.ContentHeight())
	vp.KeyMap = scrollKeyMap()

	return &riskGuideView{
		state: state,
		vp:    vp,
		keys:  newRiskGuideKeyMap(),
	}
}

// riskGuideLoadedMsg carries the guide for the requested level.
type riskGuideLoadedMsg struct {
	resp *app.RiskGuideResponse
	err  error
}

func (v *riskGuideView) Init() tea.Cmd {
	return v.load()
}

func (v *riskGuideView) load() tea.Cmd {
	svc := v.state.App.riskGuideUseCase()
	level := v.level
	return func() tea.Msg {
		resp, err := svc.Guide(context.Background(), app.RiskGuideRequest{Level: level})
		return riskGuideLoadedMsg{resp: resp, err: err}
	}
}

func (v *riskGuideView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = v.state.ContentWidth()
		v.vp.Height = v.state.ContentHeight()
		return v, v.load()

	case riskGuideLoadedMsg:
		if msg.err != nil {
			v.state.Logger.Warn("risk_guide_load_failed", zap.Error(msg.err))
			v.vp.SetContent(formatter.StyleRed.Render("Error: " + msg.err.Error()))
			return v, nil
		}
		v.vp.SetContent(formatter.FormatRiskGuide(msg.resp, v.state.ContentWidth()))
		v.vp.GotoTop()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.All):
			return v, v.filter("")
		case key.Matches(msg, v.keys.Low):
			return v, v.filter(domain.RiskLow)
		case key.Matches(msg, v.keys.Medium):
			return v, v.filter(domain.RiskMedium)
		case key.Matches(msg, v.keys.High):
			return v, v.filter(domain.RiskHigh)
		case key.Matches(msg, v.keys.Back):
			return v, popView()
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *riskGuideView) filter(level domain.RiskLevel) tea.Cmd {
	v.level = level
	return v.load()
}

func (v *riskGuideView) View() string {
	return v.vp.View()
}

func (v *riskGuideView) ID() ViewID { return ViewRiskGuide }

func (v *riskGuideView) Title() string {
	if v.level == "" {
		return "Risk Guide"
	}
	return "Risk Guide (" + string(v.level) + ")"
}

func (v *riskGuideView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.All, v.keys.Low, v.keys.Back}
}
