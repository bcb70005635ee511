package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/timeline"
	"github.com/charmbracelet/x/ansi"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
	trackFilled = "━"
	trackEmpty  = "─"
	pointer     = "▼"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
func RenderProgress(pct float64, width int) string {
	pct = clampRatio(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3.0f%%", StyleAccent.Render(bar), pct*100)
}

// RenderSlider draws the week slider as three lines: a pointer above the
// current week, the track with its fill, and the checkpoint markers below.
// width is the track width in columns.
func RenderSlider(snap timeline.Snapshot, width int) string {
	if width < 10 {
		width = 10
	}
	col := func(week int) int {
		c := week * (width - 1) / domain.MaxWeek
		return max(0, min(c, width-1))
	}

	filled := int(clampRatio(snap.Progress) * float64(width))
	pointerCol := col(snap.CurrentWeek)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pointerCol))
	b.WriteString(StylePointer.Render(pointer))
	b.WriteString("\n")

	track := []rune(strings.Repeat(trackFilled, filled) + strings.Repeat(trackEmpty, width-filled))
	markerCols := make(map[int]timeline.Marker, len(snap.Markers))
	for _, m := range snap.Markers {
		markerCols[col(m.Week)] = m
	}
	for i, r := range track {
		if m, ok := markerCols[i]; ok {
			if m.Active {
				b.WriteString(StyleAccent.Render("●"))
			} else {
				b.WriteString(Dim("○"))
			}
			continue
		}
		if i < filled {
			b.WriteString(StyleAccent.Render(string(r)))
		} else {
			b.WriteString(Dim(string(r)))
		}
	}
	b.WriteString("\n")

	b.WriteString(markerLabels(snap.Markers, width, col))
	return b.String()
}

// markerLabels lays out "Label week" captions under the track. When the
// full captions do not fit in width, only the week numbers are shown, and
// the line is clipped to width either way.
func markerLabels(markers []timeline.Marker, width int, col func(int) int) string {
	line := layoutCaptions(markers, width, col, func(m timeline.Marker) string {
		return fmt.Sprintf("%s %d", m.Label, m.DisplayWeek)
	})
	if ansi.StringWidth(line) > width {
		line = layoutCaptions(markers, width, col, func(m timeline.Marker) string {
			return fmt.Sprintf("%d", m.DisplayWeek)
		})
	}
	return ansi.Truncate(line, width, "")
}

// layoutCaptions centers each caption under its marker, pinning the first
// and last to the track edges and shifting a caption right when it would
// overlap the previous one.
func layoutCaptions(markers []timeline.Marker, width int, col func(int) int, caption func(timeline.Marker) string) string {
	var b strings.Builder
	cursor := 0
	for i, m := range markers {
		text := caption(m)
		start := col(m.Week) - len(text)/2
		switch {
		case i == 0:
			start = 0
		case i == len(markers)-1:
			start = width - len(text)
		}
		if start < cursor {
			start = cursor
		}
		b.WriteString(strings.Repeat(" ", start-cursor))
		if m.Active {
			b.WriteString(StyleFg.Render(text))
		} else {
			b.WriteString(Dim(text))
		}
		cursor = start + len(text) + 1
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

func clampRatio(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
