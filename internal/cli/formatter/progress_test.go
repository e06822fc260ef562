package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    int
		filled int
		label  string
	}{
		{"zero", 0, 0, "  0%"},
		{"half", 50, 5, " 50%"},
		{"full", 100, 10, "100%"},
		{"over clamps", 140, 10, "100%"},
		{"negative clamps", -5, 0, "  0%"},
		{"rounds down", 65, 6, " 65%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.pct, 10))
			assert.Equal(t, strings.Count(got, filledBlock), tt.filled)
			assert.Equal(t, strings.Count(got, emptyBlock), 10-tt.filled)
			assert.True(t, strings.HasSuffix(got, tt.label), got)
		})
	}
}

func TestRenderCompactBar(t *testing.T) {
	got := stripANSI(RenderCompactBar(50, 1, true))
	assert.Equal(t, filledBlock+emptyBlock, got, "width clamps to 2")
	assert.NotContains(t, RenderCompactBar(30, 8, false), "%")
}

func TestRenderSparkline(t *testing.T) {
	got := stripANSI(RenderSparkline([]int{5, 7, 3, 8, 6, 4, 7}))
	runes := []rune(got)
	assert.Len(t, runes, 7)
	assert.Equal(t, '█', runes[3])
	assert.Equal(t, "▁▁", stripANSI(RenderSparkline([]int{0, 0})))
	assert.Empty(t, stripANSI(RenderSparkline(nil)))
}
