package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of an outline: a module at level 0 or a lesson at
// level 1.
type TreeItem struct {
	Title  string
	Icon   string // rendered before the title; empty for none
	Level  int
	IsLast bool
	Done   bool
	Detail string // right-aligned badge such as a duration
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree using box-drawing
// connectors. Completed items get a green ✔ and are dimmed; details are
// right-aligned in a shared column.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	widest := 0
	for i, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			prefix.WriteString(strings.Repeat(treePipe, item.Level-1))
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		title := item.Title
		if item.Level == 0 {
			title = Bold(title)
		}
		if item.Done {
			prefix.WriteString(StyleGreen.Render("✔ "))
			title = Dim(item.Title)
		} else if item.Icon != "" {
			prefix.WriteString(item.Icon + " ")
		}

		contents[i] = prefix.String() + title
		widest = max(widest, lipgloss.Width(contents[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(contents[i])
		if item.Detail != "" {
			pad := widest - lipgloss.Width(contents[i])
			b.WriteString(strings.Repeat(" ", pad) + "  " + StyleBlue.Render(item.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
