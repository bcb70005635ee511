package timeline

import (
	"fmt"

	"github.com/alexanderramin/janani/internal/domain"
)

// Marker is a checkpoint on the horizontal timeline.
type Marker struct {
	Week        int    `json:"week" yaml:"week"`
	DisplayWeek int    `json:"display_week" yaml:"display_week"`
	Label       string `json:"label" yaml:"label"`
	Active      bool   `json:"active" yaml:"active"`
}

// HighlightView is a week highlight with its reached flag.
type HighlightView struct {
	Week    int    `json:"week" yaml:"week"`
	Event   string `json:"event" yaml:"event"`
	Reached bool   `json:"reached" yaml:"reached"`
}

// PhaseCard is a trimester card. Current marks the card containing the
// current week; Expanded marks the selected card.
type PhaseCard struct {
	Phase    domain.TrimesterPhase `json:"phase" yaml:"phase"`
	Current  bool                  `json:"current" yaml:"current"`
	Expanded bool                  `json:"expanded" yaml:"expanded"`
}

// Snapshot holds every fact the view displays for one State.
type Snapshot struct {
	CurrentWeek int              `json:"current_week" yaml:"current_week"`
	Trimester   domain.Trimester `json:"trimester" yaml:"trimester"`
	Progress    float64          `json:"progress" yaml:"progress"`
	Guidance    string           `json:"guidance" yaml:"guidance"`
	Selected    domain.Trimester `json:"selected_trimester,omitempty" yaml:"selected_trimester,omitempty"`
	Markers     []Marker         `json:"markers" yaml:"markers"`
	Highlights  []HighlightView  `json:"highlights" yaml:"highlights"`
	Cards       []PhaseCard      `json:"cards" yaml:"cards"`
}

// Derive computes the snapshot for s. It rejects a week outside [1,40] and
// a selection that is neither none nor a valid trimester.
func Derive(s State) (Snapshot, error) {
	tri, err := ClassifyTrimester(s.CurrentWeek)
	if err != nil {
		return Snapshot{}, err
	}
	ratio, err := ProgressRatio(s.CurrentWeek)
	if err != nil {
		return Snapshot{}, err
	}
	if s.Selected != domain.NoTrimester && !s.Selected.Valid() {
		return Snapshot{}, fmt.Errorf("%w: %d", domain.ErrUnknownTrimester, int(s.Selected))
	}

	snap := Snapshot{
		CurrentWeek: s.CurrentWeek,
		Trimester:   tri,
		Progress:    ratio,
		Guidance:    GuidanceText(tri),
		Selected:    s.Selected,
	}

	for _, cp := range domain.Checkpoints() {
		snap.Markers = append(snap.Markers, Marker{
			Week:        cp.Week,
			DisplayWeek: cp.DisplayWeek(),
			Label:       cp.Label,
			Active:      IsReached(cp.ActiveFrom, s.CurrentWeek),
		})
	}

	for _, h := range domain.Highlights() {
		snap.Highlights = append(snap.Highlights, HighlightView{
			Week:    h.Week,
			Event:   h.Event,
			Reached: IsReached(h.Week, s.CurrentWeek),
		})
	}

	for _, p := range domain.Phases() {
		snap.Cards = append(snap.Cards, PhaseCard{
			Phase:    p,
			Current:  p.Trimester == tri,
			Expanded: p.Trimester == s.Selected,
		})
	}

	return snap, nil
}

// ReachedCount returns how many highlights have been reached.
func (s Snapshot) ReachedCount() int {
	n := 0
	for _, h := range s.Highlights {
		if h.Reached {
			n++
		}
	}
	return n
}

// NextHighlight returns the first highlight not yet reached.
func (s Snapshot) NextHighlight() (HighlightView, bool) {
	for _, h := range s.Highlights {
		if !h.Reached {
			return h, true
		}
	}
	return HighlightView{}, false
}
