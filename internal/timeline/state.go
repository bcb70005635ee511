package timeline

import "github.com/alexanderramin/janani/internal/domain"

// State is the transient UI state of one timeline view. It is created when
// the view mounts, changed only by user input, and dropped with the view.
type State struct {
	CurrentWeek int
	Selected    domain.Trimester
}

// NewState returns the mount-time defaults: week 20, no card expanded.
func NewState() State {
	return State{CurrentWeek: domain.DefaultWeek, Selected: domain.NoTrimester}
}

// WithWeek sets the current week, clamped to [1,40].
func (s State) WithWeek(week int) State {
	s.CurrentWeek = domain.ClampWeek(week)
	return s
}

// StepWeek moves the current week by delta, clamped to [1,40].
func (s State) StepWeek(delta int) State {
	return s.WithWeek(s.CurrentWeek + delta)
}

// Toggle expands the card for t, or collapses it if it is already expanded.
func (s State) Toggle(t domain.Trimester) State {
	s.Selected = ToggleSelection(s.Selected, t)
	return s
}

// Select expands the card for t directly. NoTrimester collapses every card.
func (s State) Select(t domain.Trimester) State {
	s.Selected = t
	return s
}
