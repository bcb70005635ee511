// Package testutil builds timeline fixtures for tests across packages.
package testutil

import (
	"testing"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/timeline"
)

// State options
type StateOption func(*timeline.State)

// AtWeek sets the current week without clamping, so tests can build
// invalid states on purpose.
func AtWeek(week int) StateOption {
	return func(s *timeline.State) {
		s.CurrentWeek = week
	}
}

func WithSelected(t domain.Trimester) StateOption {
	return func(s *timeline.State) {
		s.Selected = t
	}
}

// NewTestState starts from the mount-time defaults (week 20, nothing
// selected) and applies opts.
func NewTestState(opts ...StateOption) timeline.State {
	s := timeline.NewState()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestSnapshot derives the snapshot for the state built from opts and
// fails the test if the state is invalid.
func NewTestSnapshot(t testing.TB, opts ...StateOption) timeline.Snapshot {
	t.Helper()
	snap, err := timeline.Derive(NewTestState(opts...))
	if err != nil {
		t.Fatalf("derive snapshot: %v", err)
	}
	return snap
}

// NewTestTimelineResponse wraps a snapshot with the page copy and the full
// risk guide, the way the timeline service does.
func NewTestTimelineResponse(t testing.TB, opts ...StateOption) *app.TimelineResponse {
	t.Helper()
	return &app.TimelineResponse{
		Title:     domain.PageTitle,
		Intro:     domain.PageIntro,
		Snapshot:  NewTestSnapshot(t, opts...),
		RiskGuide: domain.RiskTiers(),
		CareNote:  domain.CareNote,
	}
}

// NewTestRiskGuide returns the guide narrowed to levels, or every tier
// with the care note when levels is empty.
func NewTestRiskGuide(t testing.TB, levels ...domain.RiskLevel) *app.RiskGuideResponse {
	t.Helper()
	if len(levels) == 0 {
		return &app.RiskGuideResponse{
			Intro:    domain.RiskGuideIntro,
			Tiers:    domain.RiskTiers(),
			CareNote: domain.CareNote,
		}
	}
	resp := &app.RiskGuideResponse{Intro: domain.RiskGuideIntro}
	for _, level := range levels {
		tier, ok := domain.RiskTierFor(level)
		if !ok {
			t.Fatalf("no risk tier for %q", level)
		}
		resp.Tiers = append(resp.Tiers, tier)
	}
	return resp
}
