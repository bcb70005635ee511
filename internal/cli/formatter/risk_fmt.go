package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatRiskGuide renders the risk tiers, the card usage guide, and the
// care note when present.
func FormatRiskGuide(resp *app.RiskGuideResponse, width int) string {
	width = max(width, minWidth)
	inner := width - boxChrome

	var b strings.Builder
	b.WriteString(Header("Pregnancy Risk Classification Guide") + "\n")
	if resp.Intro != "" {
		b.WriteString(Dim(Wrap(resp.Intro, width)) + "\n")
	}
	b.WriteString("\n")

	for _, t := range resp.Tiers {
		b.WriteString(FormatRiskTier(t, inner) + "\n")
	}

	if len(resp.Tiers) > 0 {
		b.WriteString("\n" + Bold("Quick Reference: When to Use Each Card") + "\n")
		for _, t := range resp.Tiers {
			card := RiskColor(t.Level).Render(fmt.Sprintf("■ Show %s Card", t.Card.Color))
			b.WriteString(fmt.Sprintf("  %s  %s\n", card, Dim(t.Card.When)))
		}
	}

	if resp.CareNote != "" {
		b.WriteString("\n" + RenderBox(domain.CareNoteTitle, StyleFg.Render(Wrap(resp.CareNote, inner))) + "\n")
	}
	return b.String()
}

// FormatRiskTier renders one tier as a box with its indicators and the
// action for the health worker. inner is the content width.
func FormatRiskTier(t domain.RiskTier, inner int) string {
	style := RiskColor(t.Level)

	var b strings.Builder
	b.WriteString(RiskIndicator(t.Level) + "  " + style.Bold(true).Render(t.Label) + "\n")
	b.WriteString(Dim(t.Summary) + "\n\n")

	mark := MarkCheck
	if t.Level != domain.RiskLow {
		mark = MarkAlert
	}
	b.WriteString(RenderTree(TreeSection(t.IndicatorHeading+":", mark, t.Indicators)))
	b.WriteString("\n" + Bold(domain.ActionHeading+":") + "\n")
	b.WriteString(StyleFg.Render(Wrap(t.Action, inner)))
	if t.ImmediateReferral {
		b.WriteString("\n\n" + StyleRedBold.Render("REFER IMMEDIATELY"))
	}

	return renderBox("", b.String(), riskBorder(t.Level))
}

func riskBorder(level domain.RiskLevel) lipgloss.Color {
	switch level {
	case domain.RiskHigh:
		return ColorRed
	case domain.RiskMedium:
		return ColorYellow
	case domain.RiskLow:
		return ColorGreen
	default:
		return ColorDim
	}
}
