package app

import (
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/timeline"
)

// TimelineRequest asks for the full page at a given week. Selected may be
// domain.NoTrimester.
type TimelineRequest struct {
	Week     int
	Selected domain.Trimester
}

func NewTimelineRequest() TimelineRequest {
	return TimelineRequest{Week: domain.DefaultWeek}
}

// TimelineResponse is everything a static rendering of the page needs.
type TimelineResponse struct {
	Title     string            `json:"title" yaml:"title"`
	Intro     string            `json:"intro" yaml:"intro"`
	Snapshot  timeline.Snapshot `json:"snapshot" yaml:"snapshot"`
	RiskGuide []domain.RiskTier `json:"risk_guide" yaml:"risk_guide"`
	CareNote  string            `json:"care_note" yaml:"care_note"`
}

type ClassifyRequest struct {
	Week int
}

type ClassifyResponse struct {
	Week      int              `json:"week" yaml:"week"`
	Trimester domain.Trimester `json:"trimester" yaml:"trimester"`
	Weeks     domain.WeekRange `json:"weeks" yaml:"weeks"`
	Progress  float64          `json:"progress" yaml:"progress"`
	Guidance  string           `json:"guidance" yaml:"guidance"`
	WeeksLeft int              `json:"weeks_left" yaml:"weeks_left"`
}

// RiskGuideRequest optionally narrows the guide to one level.
type RiskGuideRequest struct {
	Level domain.RiskLevel
}

type RiskGuideResponse struct {
	Intro    string            `json:"intro" yaml:"intro"`
	Tiers    []domain.RiskTier `json:"tiers" yaml:"tiers"`
	CareNote string            `json:"care_note" yaml:"care_note"`
}
