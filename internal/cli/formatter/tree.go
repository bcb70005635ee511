package formatter

import (
	"strings"
)

// TreeItem is one line of an indented card outline. Level 0 lines are
// section headings; deeper lines hang off the heading above them.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Mark   TreeMark
}

// TreeMark selects the glyph drawn before a tree item.
type TreeMark int

const (
	MarkNone TreeMark = iota
	MarkCheck
	MarkAlert
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented outline using box-drawing
// connectors. Check items get a green ✔, alert items an amber ▲.
func RenderTree(items []TreeItem) string {
	var b strings.Builder
	for _, item := range items {
		if item.Level == 0 {
			b.WriteString(Bold(item.Title) + "\n")
			continue
		}

		connector := strings.Repeat(treePipe, item.Level-1)
		if item.IsLast {
			connector += treeCorner
		} else {
			connector += treeBranch
		}
		b.WriteString(Dim(connector))

		switch item.Mark {
		case MarkCheck:
			b.WriteString(StyleGreen.Render("✔ "))
		case MarkAlert:
			b.WriteString(StyleYellowBold.Render("▲ "))
		}
		b.WriteString(StyleFg.Render(item.Title) + "\n")
	}
	return b.String()
}

// TreeSection converts a heading and its items into tree lines.
func TreeSection(heading string, mark TreeMark, items []string) []TreeItem {
	out := make([]TreeItem, 0, len(items)+1)
	out = append(out, TreeItem{Title: heading})
	for i, it := range items {
		out = append(out, TreeItem{Title: it, Level: 1, IsLast: i == len(items)-1, Mark: mark})
	}
	return out
}
