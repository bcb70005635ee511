package export

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/timeline"
)

// Markdown renders the whole page as a CommonMark document. Collapsed cards
// show their development line only; the selected card lists every detail.
func Markdown(resp *app.TimelineResponse) string {
	var b strings.Builder
	snap := resp.Snapshot

	fmt.Fprintf(&b, "# %s\n\n%s\n\n", resp.Title, resp.Intro)

	fmt.Fprintf(&b, "**Week %d of %d** · %s · %.0f%% complete\n\n",
		snap.CurrentWeek, domain.MaxWeek, snap.Trimester, snap.Progress*100)
	fmt.Fprintf(&b, "> %s\n\n", snap.Guidance)

	b.WriteString("## Timeline\n\n")
	b.WriteString("| Marker | Week | Reached |\n|---|---|---|\n")
	for _, m := range snap.Markers {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", m.Label, m.DisplayWeek, yesNo(m.Active))
	}
	b.WriteString("\n")

	b.WriteString("## Trimesters\n\n")
	for _, c := range snap.Cards {
		writePhaseMarkdown(&b, c)
	}

	b.WriteString("## Key Milestones Week-by-Week\n\n")
	for _, h := range snap.Highlights {
		box := " "
		if h.Reached {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] **Week %d**: %s\n", box, h.Week, h.Event)
	}
	b.WriteString("\n")

	b.WriteString(RiskGuideMarkdown(&app.RiskGuideResponse{
		Intro:    domain.RiskGuideIntro,
		Tiers:    resp.RiskGuide,
		CareNote: resp.CareNote,
	}))
	return b.String()
}

func writePhaseMarkdown(b *strings.Builder, c timeline.PhaseCard) {
	p := c.Phase
	title := fmt.Sprintf("### %s (%s)", p.Title, p.Weeks)
	if c.Current {
		title += " · you are here"
	}
	fmt.Fprintf(b, "%s\n\n**Baby Development:** %s\n\n", title, p.BabyDevelopment)
	if !c.Expanded {
		return
	}
	writeListMarkdown(b, "Mother's Milestones", p.MotherMilestones)
	writeListMarkdown(b, "Key Checkups", p.KeyCheckups)
	writeListMarkdown(b, "Important Alerts", p.WarningSigns)
}

// RiskGuideMarkdown renders the risk classification guide and the closing
// care note.
func RiskGuideMarkdown(resp *app.RiskGuideResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Pregnancy Risk Classification Guide\n\n%s\n\n", resp.Intro)
	for _, t := range resp.Tiers {
		fmt.Fprintf(&b, "### %s\n\n_%s_\n\n", t.Label, t.Summary)
		writeListMarkdown(&b, t.IndicatorHeading, t.Indicators)
		fmt.Fprintf(&b, "**%s:** %s\n\n", domain.ActionHeading, t.Action)
		if t.ImmediateReferral {
			b.WriteString("**Refer immediately.**\n\n")
		}
	}

	if len(resp.Tiers) > 0 {
		b.WriteString("### Quick Reference: When to Use Each Card\n\n")
		for _, t := range resp.Tiers {
			fmt.Fprintf(&b, "- **Show %s Card**: %s\n", t.Card.Color, t.Card.When)
		}
		b.WriteString("\n")
	}

	if resp.CareNote != "" {
		fmt.Fprintf(&b, "## %s\n\n%s\n", domain.CareNoteTitle, resp.CareNote)
	}
	return b.String()
}

func writeListMarkdown(b *strings.Builder, heading string, items []string) {
	fmt.Fprintf(b, "**%s:**\n\n", heading)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
