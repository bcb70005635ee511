package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/timeline"
)

const (
	// Border plus horizontal padding of RenderBox.
	boxChrome   = 6
	minWidth    = 40
	sliderInset = 2
)

// FormatTimeline renders the whole page for non-interactive output.
func FormatTimeline(resp *app.TimelineResponse, width int) string {
	width = max(width, minWidth)
	snap := resp.Snapshot

	var b strings.Builder
	b.WriteString(Header(resp.Title) + "\n")
	b.WriteString(Dim(Wrap(resp.Intro, width)) + "\n\n")

	b.WriteString(FormatWeekPanel(snap, width) + "\n\n")

	b.WriteString(Header("Trimesters") + "\n")
	for _, c := range snap.Cards {
		b.WriteString(FormatCard(c, width) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(FormatHighlights(snap, width) + "\n")

	b.WriteString(FormatRiskGuide(&app.RiskGuideResponse{
		Intro:    domain.RiskGuideIntro,
		Tiers:    resp.RiskGuide,
		CareNote: resp.CareNote,
	}, width))
	return b.String()
}

// FormatWeekPanel renders the current-week status: slider, trimester and
// guidance.
func FormatWeekPanel(snap timeline.Snapshot, width int) string {
	width = max(width, minWidth)
	inner := width - boxChrome

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		Bold(fmt.Sprintf("Week %d of %d", snap.CurrentWeek, domain.MaxWeek)),
		TrimesterColor(snap.Trimester).Render(PhaseIcon(snap.Trimester)+" "+snap.Trimester.String()),
	))
	b.WriteString(RenderSlider(snap, inner-sliderInset) + "\n\n")
	b.WriteString(RenderProgress(snap.Progress, min(20, inner-8)) + "\n\n")
	b.WriteString(StyleFg.Render(Wrap(snap.Guidance, inner)))

	return RenderBox("Current Week", b.String())
}

// FormatCard renders one trimester card. The selected card is boxed in the
// accent color and lists milestones, checkups and alerts.
func FormatCard(c timeline.PhaseCard, width int) string {
	width = max(width, minWidth)
	inner := width - boxChrome
	p := c.Phase

	title := fmt.Sprintf("%s %s", PhaseIcon(p.Trimester), p.Title)

	var b strings.Builder
	meta := Dim(fmt.Sprintf("%s · %s", p.Trimester, p.Weeks))
	if c.Current {
		meta += "  " + StylePointer.Render("◀ you are here")
	}
	b.WriteString(meta + "\n\n")
	b.WriteString(Bold("Baby Development") + "\n")
	b.WriteString(StyleFg.Render(Wrap(p.BabyDevelopment, inner)))

	if !c.Expanded {
		b.WriteString("\n\n" + StyleAccent.Render(fmt.Sprintf("View Details [%d]", int(p.Trimester))))
		return RenderBox(title, b.String())
	}

	var items []TreeItem
	items = append(items, TreeSection("Mother's Milestones", MarkCheck, p.MotherMilestones)...)
	items = append(items, TreeSection("Key Checkups", MarkNone, p.KeyCheckups)...)
	items = append(items, TreeSection("Important Alerts", MarkAlert, p.WarningSigns)...)
	b.WriteString("\n\n" + strings.TrimRight(RenderTree(items), "\n"))

	return RenderHighlightBox(title, b.String())
}

// FormatHighlights renders the week-by-week milestone table.
func FormatHighlights(snap timeline.Snapshot, width int) string {
	width = max(width, minWidth)

	rows := make([][]string, 0, len(snap.Highlights))
	for _, h := range snap.Highlights {
		week := fmt.Sprintf("Week %d", h.Week)
		event := h.Event
		if h.Reached {
			week = StyleAccent.Render(week)
		} else {
			week = Dim(week)
			event = Dim(event)
		}
		rows = append(rows, []string{CheckMark(h.Reached), week, event})
	}

	var b strings.Builder
	b.WriteString(Header("Key Milestones Week-by-Week") + "\n")
	b.WriteString(RenderTable([]string{"", "WEEK", "MILESTONE"}, rows, width))
	if next, ok := snap.NextHighlight(); ok {
		b.WriteString(Dim(fmt.Sprintf("Next: week %d, %d weeks away", next.Week, next.Week-snap.CurrentWeek)) + "\n")
	}
	return b.String()
}

// FormatClassify renders the one-week summary printed by `classify`.
func FormatClassify(resp *app.ClassifyResponse) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n",
		Bold(fmt.Sprintf("Week %d:", resp.Week)),
		TrimesterColor(resp.Trimester).Render(fmt.Sprintf("%s %s (%s)", PhaseIcon(resp.Trimester), resp.Trimester, resp.Weeks)),
	))
	b.WriteString(RenderProgress(resp.Progress, 20) + "\n")
	b.WriteString(StyleFg.Render(resp.Guidance) + "\n")
	if resp.WeeksLeft > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d weeks to due date", resp.WeeksLeft)) + "\n")
	} else {
		b.WriteString(StyleAccent.Render("Due date reached") + "\n")
	}
	return b.String()
}
