package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/janani/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorAqua   = lipgloss.Color("#2BB4A0")
	ColorPink   = lipgloss.Color("#F4A9A2")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleRedBold    = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleAccent     = lipgloss.NewStyle().Foreground(ColorAqua).Bold(true)
	StylePointer    = lipgloss.NewStyle().Foreground(ColorPink).Bold(true)
)

// RiskColor returns the lipgloss style for a risk tier's card color.
func RiskColor(risk domain.RiskLevel) lipgloss.Style {
	switch risk {
	case domain.RiskHigh:
		return StyleRed
	case domain.RiskMedium:
		return StyleYellow
	case domain.RiskLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RiskIndicator returns a colored indicator such as "● HIGH RISK".
func RiskIndicator(risk domain.RiskLevel) string {
	switch risk {
	case domain.RiskHigh:
		return StyleRed.Render("● HIGH RISK")
	case domain.RiskMedium:
		return StyleYellow.Render("● MEDIUM RISK")
	case domain.RiskLow:
		return StyleGreen.Render("● LOW RISK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// PhaseIcon is the glyph drawn on a trimester card header.
func PhaseIcon(t domain.Trimester) string {
	switch t {
	case domain.TrimesterFirst:
		return "♥"
	case domain.TrimesterSecond:
		return "☺"
	case domain.TrimesterThird:
		return "✿"
	default:
		return "·"
	}
}

// TrimesterColor returns the accent style of a trimester.
func TrimesterColor(t domain.Trimester) lipgloss.Style {
	switch t {
	case domain.TrimesterFirst:
		return StylePurple
	case domain.TrimesterSecond:
		return StyleBlue
	case domain.TrimesterThird:
		return StyleGreen
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", runewidth.StringWidth(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
