package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// defaultWidth is used when neither a flag, the config nor the terminal
// gives a width.
const defaultWidth = 100

// TerminalWidth reports the width of stdout, or 0 when stdout is not a
// terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 0
	}
	return w
}

// StdioInteractive reports whether both stdin and stdout are terminals.
// Redirected output gets the static render, not the alt screen.
func StdioInteractive() bool {
	return interactiveFDs(isTerminal, os.Stdin.Fd(), os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func interactiveFDs(isTerm func(uintptr) bool, in, out uintptr) bool {
	return isTerm(in) && isTerm(out)
}

// outputWidth resolves the render width for static output. An explicit
// flag wins over display.width, which wins over the detected terminal.
func (a *App) outputWidth(flag int) int {
	if flag > 0 {
		return flag
	}
	if w := a.cfg().Display.Width; w > 0 {
		return w
	}
	if a.TermWidth != nil {
		if w := a.TermWidth(); w > 0 {
			return w
		}
	}
	return defaultWidth
}
