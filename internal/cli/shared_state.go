package cli

import "go.uber.org/zap"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Logger is safe to use while the alt screen is active.
	Logger *zap.Logger

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth is the render width for formatted content.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 0 {
		return defaultWidth
	}
	return s.Width
}
