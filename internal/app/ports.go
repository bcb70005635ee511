package app

import "context"

type SnapshotUseCase interface {
	Snapshot(ctx context.Context, req TimelineRequest) (*TimelineResponse, error)
}

type ClassifyUseCase interface {
	Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error)
}

type RiskGuideUseCase interface {
	Guide(ctx context.Context, req RiskGuideRequest) (*RiskGuideResponse, error)
}
