package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuide_AllTiers(t *testing.T) {
	svc := NewRiskGuideService()

	resp, err := svc.Guide(context.Background(), app.RiskGuideRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Tiers, 3)
	assert.Equal(t, domain.RiskGuideIntro, resp.Intro)
	assert.Equal(t, domain.CareNote, resp.CareNote)
}

func TestGuide_SingleTier(t *testing.T) {
	svc := NewRiskGuideService()

	resp, err := svc.Guide(context.Background(), app.RiskGuideRequest{Level: domain.RiskMedium})
	require.NoError(t, err)
	require.Len(t, resp.Tiers, 1)
	assert.Equal(t, "Medium Risk - Monitor", resp.Tiers[0].Label)
}

func TestGuide_UnknownLevel(t *testing.T) {
	svc := NewRiskGuideService()

	_, err := svc.Guide(context.Background(), app.RiskGuideRequest{Level: "extreme"})
	var te *app.TimelineError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, app.ErrInvalidRiskLevel, te.Code)
	assert.ErrorIs(t, err, domain.ErrUnknownRiskLevel)
}
