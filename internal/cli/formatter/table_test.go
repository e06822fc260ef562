package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"VIEW", "PATH"},
		[][]string{
			{StyleGreen.Render("landing"), "/"},
			{"course-builder", "/builder"},
		},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	col := strings.Index(lines[0], "PATH")
	assert.Equal(t, len("course-builder")+colGap, col)
	assert.Equal(t, col, strings.Index(lines[2], "/"))
	assert.Equal(t, col, strings.Index(lines[3], "/builder"))
	assert.True(t, strings.HasPrefix(lines[1], strings.Repeat("─", len("course-builder"))))
}

func TestRenderTable_ShortRowsAndNoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))

	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"only"}}))
	assert.Contains(t, out, "only")
}

func TestRenderTree(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "Module", Detail: "5-10 hours"},
		{Title: "Intro", Level: 1, Done: true},
		{Title: "Practice", Level: 1, IsLast: true, Icon: ">", Detail: "30 min"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[1], "├─ ✔ Intro"))
	assert.True(t, strings.HasPrefix(lines[2], "└─ > Practice"))
	// Details share a column.
	assert.Equal(t,
		len([]rune(lines[0]))-len([]rune("5-10 hours")),
		len([]rune(lines[2]))-len([]rune("30 min")))

	assert.Empty(t, RenderTree(nil))
}
