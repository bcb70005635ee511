package service

import "github.com/alexanderramin/janani/internal/app"

type TimelineService interface {
	app.SnapshotUseCase
	app.ClassifyUseCase
}

type RiskGuideService interface {
	app.RiskGuideUseCase
}
