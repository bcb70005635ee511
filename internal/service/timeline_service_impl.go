package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/timeline"
)

type timelineService struct {
	observer UseCaseObserver
}

func NewTimelineService(observers ...UseCaseObserver) TimelineService {
	return &timelineService{observer: useCaseObserverOrNoop(observers)}
}

func (s *timelineService) Snapshot(ctx context.Context, req app.TimelineRequest) (resp *app.TimelineResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"week": req.Week, "selected": int(req.Selected)}
	defer observe(ctx, s.observer, "snapshot", startedAt, fields, &err)

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := timeline.Derive(timeline.State{CurrentWeek: req.Week, Selected: req.Selected})
	if err != nil {
		return nil, toTimelineError(err)
	}
	fields["trimester"] = int(snap.Trimester)
	fields["reached"] = snap.ReachedCount()

	return &app.TimelineResponse{
		Title:     domain.PageTitle,
		Intro:     domain.PageIntro,
		Snapshot:  snap,
		RiskGuide: domain.RiskTiers(),
		CareNote:  domain.CareNote,
	}, nil
}

func (s *timelineService) Classify(ctx context.Context, req app.ClassifyRequest) (resp *app.ClassifyResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"week": req.Week}
	defer observe(ctx, s.observer, "classify", startedAt, fields, &err)

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	tri, err := timeline.ClassifyTrimester(req.Week)
	if err != nil {
		return nil, toTimelineError(err)
	}
	ratio, err := timeline.ProgressRatio(req.Week)
	if err != nil {
		return nil, toTimelineError(err)
	}
	phase, _ := domain.PhaseFor(tri)
	fields["trimester"] = int(tri)

	return &app.ClassifyResponse{
		Week:      req.Week,
		Trimester: tri,
		Weeks:     phase.Weeks,
		Progress:  ratio,
		Guidance:  timeline.GuidanceText(tri),
		WeeksLeft: domain.MaxWeek - req.Week,
	}, nil
}

// toTimelineError maps domain sentinels onto coded use-case errors.
func toTimelineError(err error) error {
	switch {
	case errors.Is(err, domain.ErrWeekOutOfRange):
		return &app.TimelineError{Code: app.ErrInvalidWeek, Message: err.Error(), Err: err}
	case errors.Is(err, domain.ErrUnknownTrimester):
		return &app.TimelineError{Code: app.ErrInvalidTrimester, Message: err.Error(), Err: err}
	case errors.Is(err, domain.ErrUnknownRiskLevel):
		return &app.TimelineError{Code: app.ErrInvalidRiskLevel, Message: err.Error(), Err: err}
	}
	return err
}
