package export

import (
	"fmt"
	"io"

	"github.com/ajstarks/svgo"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/timeline"
)

// Page palette.
const (
	colorBackdrop = "#FDF7F2"
	colorPanel    = "#ffffff"
	colorAccent   = "#2BB4A0"
	colorCurrent  = "#F4A9A2"
	colorInactive = "#E5E7EB"
	colorText     = "#111827"
	colorSubtle   = "#4B5563"
	colorMuted    = "#6B7280"
)

const (
	svgWidth      = 960
	svgPadding    = 48
	svgTrackY     = 168
	svgTrackH     = 10
	svgMarkerR    = 14
	svgRowHeight  = 26
	svgListTop    = 300
	svgFontFamily = "font-family:Helvetica,Arial,sans-serif"
)

// WriteSVG draws the horizontal timeline: track with progress fill,
// checkpoint markers, the current-week pointer, and the highlight list.
func WriteSVG(w io.Writer, resp *app.TimelineResponse) error {
	snap := resp.Snapshot
	height := svgListTop + len(snap.Highlights)*svgRowHeight + svgPadding

	canvas := svg.New(w)
	canvas.Start(svgWidth, height)
	canvas.Rect(0, 0, svgWidth, height, "fill:"+colorBackdrop)
	canvas.Roundrect(16, 16, svgWidth-32, height-32, 16, 16, "fill:"+colorPanel)

	canvas.Text(svgPadding, 64, resp.Title, textStyle(colorText, 24, true))
	canvas.Text(svgPadding, 94,
		fmt.Sprintf("Week %d of %d · %s · %.0f%% complete", snap.CurrentWeek, domain.MaxWeek, snap.Trimester, snap.Progress*100),
		textStyle(colorSubtle, 15, false))
	canvas.Text(svgPadding, 118, snap.Guidance, textStyle(colorMuted, 13, false))

	drawTrack(canvas, snap)
	drawHighlightList(canvas, snap)

	canvas.End()
	return nil
}

func drawTrack(canvas *svg.SVG, snap timeline.Snapshot) {
	trackW := svgWidth - 2*svgPadding
	canvas.Roundrect(svgPadding, svgTrackY-svgTrackH/2, trackW, svgTrackH, 5, 5, "fill:"+colorInactive)
	canvas.Roundrect(svgPadding, svgTrackY-svgTrackH/2, int(snap.Progress*float64(trackW)), svgTrackH, 5, 5, "fill:"+colorAccent)

	for _, m := range snap.Markers {
		x := trackX(m.Week)
		fill := colorInactive
		if m.Active {
			fill = colorAccent
		}
		canvas.Circle(x, svgTrackY, svgMarkerR, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:3", fill, colorPanel))
		canvas.Text(x, svgTrackY+40, m.Label, textStyle(colorSubtle, 13, true)+";text-anchor:middle")
		canvas.Text(x, svgTrackY+58, fmt.Sprintf("Week %d", m.DisplayWeek), textStyle(colorMuted, 12, false)+";text-anchor:middle")
	}

	for _, h := range snap.Highlights {
		fill := colorInactive
		if h.Reached {
			fill = colorAccent
		}
		x := trackX(h.Week)
		canvas.Line(x, svgTrackY+svgTrackH, x, svgTrackY+svgTrackH+8, fmt.Sprintf("stroke:%s;stroke-width:2", fill))
	}

	// Pointer above the track at the current week.
	x := trackX(snap.CurrentWeek)
	top := svgTrackY - svgMarkerR - 6
	canvas.Polygon(
		[]int{x - 9, x + 9, x},
		[]int{top - 14, top - 14, top},
		"fill:"+colorCurrent,
	)
	canvas.Text(x, top-20, fmt.Sprintf("Week %d", snap.CurrentWeek), textStyle(colorText, 13, true)+";text-anchor:middle")
}

func drawHighlightList(canvas *svg.SVG, snap timeline.Snapshot) {
	canvas.Text(svgPadding, svgListTop-18, "Key Milestones Week-by-Week", textStyle(colorText, 16, true))
	for i, h := range snap.Highlights {
		y := svgListTop + i*svgRowHeight
		fill, text := colorInactive, colorMuted
		if h.Reached {
			fill, text = colorAccent, colorText
		}
		canvas.Circle(svgPadding+8, y, 7, "fill:"+fill)
		canvas.Text(svgPadding+24, y+5, fmt.Sprintf("Week %d", h.Week), textStyle(text, 13, true))
		canvas.Text(svgPadding+100, y+5, h.Event, textStyle(text, 13, false))
	}
}

// trackX maps a week in [0,40] onto the horizontal track.
func trackX(week int) int {
	trackW := svgWidth - 2*svgPadding
	return svgPadding + week*trackW/domain.MaxWeek
}

func textStyle(color string, size int, bold bool) string {
	s := fmt.Sprintf("fill:%s;font-size:%dpx;%s", color, size, svgFontFamily)
	if bold {
		s += ";font-weight:bold"
	}
	return s
}
