package cli

import "github.com/alexanderramin/janani/internal/app"

func (a *App) snapshotUseCase() app.SnapshotUseCase {
	if a.ShowTimeline != nil {
		return a.ShowTimeline
	}
	return a.Timeline
}

func (a *App) classifyUseCase() app.ClassifyUseCase {
	if a.ClassifyWeek != nil {
		return a.ClassifyWeek
	}
	return a.Timeline
}

func (a *App) riskGuideUseCase() app.RiskGuideUseCase {
	if a.RiskGuide != nil {
		return a.RiskGuide
	}
	return a.Risk
}
