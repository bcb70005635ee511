package export

import (
	"fmt"
	"io"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/timeline"
)

const pageCSS = `
body{margin:0;background:` + colorBackdrop + `;color:` + colorText + `;font-family:Helvetica,Arial,sans-serif}
main{max-width:1024px;margin:0 auto;padding:32px}
header{text-align:center}
section{background:` + colorPanel + `;border-radius:16px;padding:24px;margin:24px 0}
.progress{height:10px;border-radius:5px;background:` + colorInactive + `}
.progress>div{height:10px;border-radius:5px;background:` + colorAccent + `}
.markers{display:flex;justify-content:space-between;list-style:none;padding:0}
.active{color:` + colorAccent + `;font-weight:bold}
.inactive{color:` + colorMuted + `}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(260px,1fr));gap:24px}
.card{border-radius:16px;box-shadow:0 4px 12px rgba(0,0,0,.06);padding:0 24px 24px}
.card.current{outline:4px solid ` + colorAccent + `}
.card h3{background:` + colorAccent + `;color:#fff;margin:0 -24px 16px;padding:24px;border-radius:16px 16px 0 0}
.reached{color:` + colorText + `}
.pending{color:` + colorMuted + `}
.risk-low{border-left:8px solid #22C55E}
.risk-medium{border-left:8px solid #EAB308}
.risk-high{border-left:8px solid #EF4444}
.note{background:rgba(244,169,162,.1)}
`

// WriteHTML renders a self-contained HTML page of the timeline.
func WriteHTML(w io.Writer, resp *app.TimelineResponse) error {
	return Page(resp).Render(w)
}

// Page builds the document node for resp.
func Page(resp *app.TimelineResponse) g.Node {
	snap := resp.Snapshot
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(resp.Title)),
				html.StyleEl(g.Raw(pageCSS)),
			),
			html.Body(
				html.Main(
					html.Header(
						html.H1(g.Text(resp.Title)),
						html.P(g.Text(resp.Intro)),
					),
					currentWeekSection(snap),
					html.Section(
						html.H2(g.Text("Trimesters")),
						html.Div(html.Class("cards"), g.Map(snap.Cards, phaseCard)),
					),
					highlightsSection(snap),
					riskSection(resp.RiskGuide),
					html.Section(
						html.Class("note"),
						html.H2(g.Text(domain.CareNoteTitle)),
						html.P(g.Text(resp.CareNote)),
					),
				),
			),
		),
	)
}

func currentWeekSection(snap timeline.Snapshot) g.Node {
	return html.Section(
		html.ID("current-week"),
		html.H2(g.Textf("Week %d of %d", snap.CurrentWeek, domain.MaxWeek)),
		html.Div(
			html.Class("progress"),
			g.Attr("role", "progressbar"),
			g.Attr("aria-valuemin", fmt.Sprint(domain.MinWeek)),
			g.Attr("aria-valuemax", fmt.Sprint(domain.MaxWeek)),
			g.Attr("aria-valuenow", fmt.Sprint(snap.CurrentWeek)),
			html.Div(html.Style(fmt.Sprintf("width:%.1f%%", snap.Progress*100))),
		),
		html.Ul(html.Class("markers"), g.Map(snap.Markers, func(m timeline.Marker) g.Node {
			return html.Li(
				html.Class(reachedClass(m.Active, "active", "inactive")),
				html.Strong(g.Text(m.Label)),
				html.Br(),
				g.Textf("Week %d", m.DisplayWeek),
			)
		})),
		html.P(html.Strong(g.Text(snap.Trimester.String())), g.Text(": "+trimmedGuidance(snap.Guidance))),
	)
}

func phaseCard(c timeline.PhaseCard) g.Node {
	p := c.Phase
	classes := "card"
	if c.Current {
		classes += " current"
	}
	return html.Article(
		html.Class(classes),
		html.H3(g.Text(p.Title), html.Br(), html.Small(g.Textf("%s · %s", p.Trimester, p.Weeks))),
		html.H4(g.Text("Baby Development")),
		html.P(g.Text(p.BabyDevelopment)),
		g.If(c.Expanded, g.Group{
			listBlock("Mother's Milestones", p.MotherMilestones),
			listBlock("Key Checkups", p.KeyCheckups),
			listBlock("Important Alerts", p.WarningSigns),
		}),
		g.If(!c.Expanded, html.P(html.Class("pending"), g.Text("Select this trimester for details."))),
	)
}

func highlightsSection(snap timeline.Snapshot) g.Node {
	return html.Section(
		html.H2(g.Text("Key Milestones Week-by-Week")),
		html.Ul(g.Map(snap.Highlights, func(h timeline.HighlightView) g.Node {
			return html.Li(
				html.Class(reachedClass(h.Reached, "reached", "pending")),
				html.Strong(g.Textf("Week %d: ", h.Week)),
				g.Text(h.Event),
			)
		})),
	)
}

func riskSection(tiers []domain.RiskTier) g.Node {
	return html.Section(
		html.H2(g.Text("Pregnancy Risk Classification Guide")),
		html.P(g.Text(domain.RiskGuideIntro)),
		g.Map(tiers, func(t domain.RiskTier) g.Node {
			return html.Div(
				html.Class("card risk-"+string(t.Level)),
				html.H3(g.Text(t.Label)),
				html.P(html.Em(g.Text(t.Summary))),
				listBlock(t.IndicatorHeading, t.Indicators),
				html.P(html.Strong(g.Text(domain.ActionHeading+": ")), g.Text(t.Action)),
			)
		}),
		html.H3(g.Text("Quick Reference: When to Use Each Card")),
		html.Ul(g.Map(tiers, func(t domain.RiskTier) g.Node {
			return html.Li(html.Strong(g.Textf("Show %s Card: ", t.Card.Color)), g.Text(t.Card.When))
		})),
	)
}

func listBlock(heading string, items []string) g.Node {
	return g.Group{
		html.H4(g.Text(heading)),
		html.Ul(g.Map(items, func(s string) g.Node { return html.Li(g.Text(s)) })),
	}
}

func reachedClass(reached bool, yes, no string) string {
	if reached {
		return yes
	}
	return no
}

// trimmedGuidance drops the "Nth trimester: " prefix already shown in bold.
func trimmedGuidance(s string) string {
	if _, rest, ok := strings.Cut(s, ": "); ok {
		return rest
	}
	return s
}
