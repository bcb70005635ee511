package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return renderBox(title, content, ColorDim)
}

// RenderHighlightBox is RenderBox with an accent border, used for the
// selected card.
func RenderHighlightBox(title string, content string) string {
	return renderBox(title, content, ColorAqua)
}

func renderBox(title, content string, border lipgloss.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Truncate shortens s to at most width terminal columns, ending with "…"
// when cut. Wide runes count as two columns.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width terminal columns.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Wrap breaks s into lines of at most width columns on word boundaries.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Wrap(s, width)
}

// CheckMark returns a green check for reached items and a dim circle
// otherwise.
func CheckMark(reached bool) string {
	if reached {
		return StyleGreen.Render("✔")
	}
	return Dim("○")
}
