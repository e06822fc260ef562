package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// RenderProgress renders a progress bar like [████░░░░]  45% for a
// percentage in 0..100. The bar is green from 66%, yellow from 33% and red
// below.
func RenderProgress(pct int, width int) string {
	pct = clampPct(pct)
	bar := progressBar(pct, width)
	return fmt.Sprintf("[%s] %3d%%", progressStyle(pct).Render(bar), pct)
}

// RenderCompactBar renders the bar alone, without brackets or percentage.
func RenderCompactBar(pct int, width int, dim bool) string {
	pct = clampPct(pct)
	bar := progressBar(pct, width)
	if dim {
		return StyleDim.Render(bar)
	}
	return progressStyle(pct).Render(bar)
}

// RenderSparkline renders one block per value scaled to the largest value,
// e.g. weekly activity hours.
func RenderSparkline(values []int) string {
	peak := 0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if peak > 0 && v > 0 {
			idx = v * (len(sparkBlocks) - 1) / peak
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return StyleGreen.Render(b.String())
}

func progressBar(pct, width int) string {
	if width < 2 {
		width = 2
	}
	filled := pct * width / 100
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func progressStyle(pct int) lipgloss.Style {
	switch {
	case pct < 33:
		return StyleRed
	case pct < 66:
		return StyleYellow
	default:
		return StyleGreen
	}
}

func clampPct(pct int) int {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}
