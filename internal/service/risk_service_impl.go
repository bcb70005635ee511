package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
)

type riskGuideService struct {
	observer UseCaseObserver
}

func NewRiskGuideService(observers ...UseCaseObserver) RiskGuideService {
	return &riskGuideService{observer: useCaseObserverOrNoop(observers)}
}

// Guide returns the whole risk guide, or a single tier when req.Level is set.
func (s *riskGuideService) Guide(ctx context.Context, req app.RiskGuideRequest) (resp *app.RiskGuideResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"level": string(req.Level)}
	defer observe(ctx, s.observer, "risk-guide", startedAt, fields, &err)

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	tiers := domain.RiskTiers()
	if req.Level != "" {
		tier, ok := domain.RiskTierFor(req.Level)
		if !ok {
			err = toTimelineError(fmt.Errorf("%w: %q", domain.ErrUnknownRiskLevel, req.Level))
			return nil, err
		}
		tiers = []domain.RiskTier{tier}
	}

	return &app.RiskGuideResponse{
		Intro:    domain.RiskGuideIntro,
		Tiers:    tiers,
		CareNote: domain.CareNote,
	}, nil
}
