package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
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
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelStyle colors a proficiency level from cool (beginner) to hot (expert).
func LevelStyle(level domain.ProficiencyLevel) lipgloss.Style {
	switch level {
	case domain.LevelBeginner:
		return StyleBlue
	case domain.LevelElementary:
		return StyleGreen
	case domain.LevelIntermediate:
		return StyleYellow
	case domain.LevelAdvanced:
		return StylePurple
	case domain.LevelExpert:
		return StyleRed
	default:
		return StyleDim
	}
}

// LevelBadge renders a level label in its color.
func LevelBadge(level domain.ProficiencyLevel) string {
	return LevelStyle(level).Render(level.Label())
}

// KindIcon returns the glyph shown before a lesson of the given kind.
func KindIcon(kind domain.LessonKind) string {
	switch kind {
	case domain.LessonVideo:
		return StyleBlue.Render("▶")
	case domain.LessonReading:
		return StyleFg.Render("≡")
	case domain.LessonExercise:
		return StyleYellow.Render("✎")
	case domain.LessonProject:
		return StylePurple.Render("◆")
	default:
		return StyleDim.Render("•")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
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
