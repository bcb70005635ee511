package formatter

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders a markdown document for the terminal. style is a
// glamour standard style name ("dark", "light", "notty", ...) or "auto" to
// pick one from the terminal background.
func RenderMarkdown(md, style string, wordWrap int) (string, error) {
	opts := []glamour.TermRendererOption{}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if wordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wordWrap))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
