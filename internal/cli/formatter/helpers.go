package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
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

// RenderStats lays out label/value pairs as a row of small cards.
func RenderStats(labels, values []string) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 2)

	cards := make([]string, 0, len(labels))
	for i, label := range labels {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		cards = append(cards, card.Render(StyleBold.Render(value)+"\n"+Dim(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// FormatDuration renders a lesson duration the way course outlines show
// it: "25 min", "1 hour", "1.5 hours", "1h 15m".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0 min"
	}
	total := int(d.Round(time.Minute).Minutes())
	h, m := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 30:
		return fmt.Sprintf("%d.5 hours", h)
	case m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h == 1:
		return "1 hour"
	default:
		return fmt.Sprintf("%d hours", h)
	}
}

// Plural returns "1 lesson" / "3 lessons".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Wrap soft-wraps text to width columns.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
