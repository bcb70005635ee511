package export

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/testutil"
)

func snapshotAt(t *testing.T, week int, selected domain.Trimester) *app.TimelineResponse {
	t.Helper()
	return testutil.NewTestTimelineResponse(t, testutil.AtWeek(week), testutil.WithSelected(selected))
}

func render(t *testing.T, f Format, resp *app.TimelineResponse) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f, resp))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"YAML", FormatYAML},
		{"yml", FormatYAML},
		{"markdown", FormatMarkdown},
		{".md", FormatMarkdown},
		{"svg", FormatSVG},
		{" html ", FormatHTML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	var te *app.TimelineError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, app.ErrInvalidFormat, te.Code)
	assert.Contains(t, err.Error(), "json, yaml, md, svg, html")
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/timeline.svg")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)

	_, err = FormatFromPath("timeline.png")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWrite_NilResponse(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, FormatJSON, nil))
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("gif"), snapshotAt(t, 20, domain.NoTrimester))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestJSON_CarriesDerivedFacts(t *testing.T) {
	out := render(t, FormatJSON, snapshotAt(t, 20, domain.NoTrimester))

	var doc struct {
		Title    string `json:"title"`
		Snapshot struct {
			CurrentWeek int     `json:"current_week"`
			Trimester   int     `json:"trimester"`
			Progress    float64 `json:"progress"`
			Selected    *int    `json:"selected_trimester"`
			Highlights  []struct {
				Week    int  `json:"week"`
				Reached bool `json:"reached"`
			} `json:"highlights"`
		} `json:"snapshot"`
		RiskGuide []domain.RiskTier `json:"risk_guide"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, domain.PageTitle, doc.Title)
	assert.Equal(t, 20, doc.Snapshot.CurrentWeek)
	assert.Equal(t, 2, doc.Snapshot.Trimester)
	assert.InDelta(t, 0.5, doc.Snapshot.Progress, 1e-12)
	assert.Nil(t, doc.Snapshot.Selected, "no selection is omitted")
	require.Len(t, doc.Snapshot.Highlights, 9)
	assert.True(t, doc.Snapshot.Highlights[3].Reached)
	assert.False(t, doc.Snapshot.Highlights[4].Reached)
	assert.Len(t, doc.RiskGuide, 3)
}

func TestYAML_CarriesSelection(t *testing.T) {
	out := render(t, FormatYAML, snapshotAt(t, 30, domain.TrimesterFirst))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	snap, ok := doc["snapshot"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 30, snap["current_week"])
	assert.Equal(t, 3, snap["trimester"])
	assert.Equal(t, 1, snap["selected_trimester"])
}

func TestMarkdown_Week20(t *testing.T) {
	out := render(t, FormatMarkdown, snapshotAt(t, 20, domain.NoTrimester))

	assert.True(t, strings.HasPrefix(out, "# "+domain.PageTitle))
	assert.Contains(t, out, "**Week 20 of 40** · Trimester 2 · 50% complete")
	assert.Contains(t, out, "| Start | 1 | yes |")
	assert.Contains(t, out, "| Trimester 2 | 26 | yes |")
	assert.Contains(t, out, "| Birth | 40 | no |")
	assert.Contains(t, out, "- [x] **Week 20**: Anatomy scan")
	assert.Contains(t, out, "- [ ] **Week 24**:")
	assert.Contains(t, out, "### Second Trimester (13-26 weeks) · you are here")
	assert.NotContains(t, out, "Mother's Milestones", "collapsed cards hide details")
	assert.Contains(t, out, "## "+domain.CareNoteTitle)
}

func TestMarkdown_ExpandedCard(t *testing.T) {
	out := render(t, FormatMarkdown, snapshotAt(t, 5, domain.TrimesterThird))

	assert.Equal(t, 1, strings.Count(out, "Mother's Milestones"))
	assert.Contains(t, out, "- Group B strep test")
	assert.Contains(t, out, "- Know when to go to hospital")
}

func TestRiskGuideMarkdown(t *testing.T) {
	out := RiskGuideMarkdown(testutil.NewTestRiskGuide(t, domain.RiskHigh))

	assert.Contains(t, out, "### High Risk - Urgent")
	assert.Contains(t, out, "**Danger Signs:**")
	assert.Contains(t, out, "**Action for ASHA:** Contact doctor immediately.")
	assert.Contains(t, out, "**Refer immediately.**")
	assert.Contains(t, out, "- **Show Red Card**:")
	assert.NotContains(t, out, domain.CareNoteTitle)
}

func TestSVG_ValidXML(t *testing.T) {
	out := render(t, FormatSVG, snapshotAt(t, 20, domain.NoTrimester))

	var doc any
	require.NoError(t, xml.Unmarshal([]byte(out), &doc), out)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Week 20 of 40")
}

func TestSVG_MarkerFill(t *testing.T) {
	out := render(t, FormatSVG, snapshotAt(t, 20, domain.NoTrimester))

	// Four checkpoint markers: three reached, birth not.
	assert.Equal(t, 3, strings.Count(out, "fill:"+colorAccent+";stroke:"))
	assert.Equal(t, 1, strings.Count(out, "fill:"+colorInactive+";stroke:"))
}

func TestSVG_EscapesText(t *testing.T) {
	resp := snapshotAt(t, 40, domain.NoTrimester)
	resp.Title = "Tom & Jerry <draft>"

	out := render(t, FormatSVG, resp)

	assert.Contains(t, out, "Tom &amp; Jerry &lt;draft&gt;")
	var doc any
	assert.NoError(t, xml.Unmarshal([]byte(out), &doc))
}

func TestTrackX(t *testing.T) {
	assert.Equal(t, svgPadding, trackX(0))
	assert.Equal(t, svgWidth-svgPadding, trackX(domain.MaxWeek))
	assert.Less(t, trackX(12), trackX(26))
}

func TestHTML_Page(t *testing.T) {
	out := render(t, FormatHTML, snapshotAt(t, 20, domain.TrimesterSecond))

	assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))
	assert.Contains(t, out, "<title>"+domain.PageTitle+"</title>")
	assert.Contains(t, out, `aria-valuenow="20"`)
	assert.Contains(t, out, "width:50.0%")
	assert.Contains(t, out, `class="card current"`)
	assert.Equal(t, 1, strings.Count(out, "Mother&#39;s Milestones"))
	assert.Equal(t, 4, strings.Count(out, `class="reached"`))
	// Five unreached highlights plus the hint on two collapsed cards.
	assert.Equal(t, 7, strings.Count(out, `class="pending"`))
	assert.Contains(t, out, "risk-high")
	assert.Contains(t, out, domain.CareNoteTitle)
}

func TestTrimmedGuidance(t *testing.T) {
	assert.Equal(t, "Energy levels improve.", trimmedGuidance("Second trimester: Energy levels improve."))
	assert.Equal(t, "plain", trimmedGuidance("plain"))
}
