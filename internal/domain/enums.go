package domain

import (
	"fmt"
	"strings"
)

// ProficiencyLevel is an ordered skill-mastery tier.
type ProficiencyLevel string

const (
	LevelBeginner     ProficiencyLevel = "beginner"
	LevelElementary   ProficiencyLevel = "elementary"
	LevelIntermediate ProficiencyLevel = "intermediate"
	LevelAdvanced     ProficiencyLevel = "advanced"
	LevelExpert       ProficiencyLevel = "expert"
)

// levelOrder is the canonical ascending order of proficiency levels.
var levelOrder = []ProficiencyLevel{
	LevelBeginner,
	LevelElementary,
	LevelIntermediate,
	LevelAdvanced,
	LevelExpert,
}

var levelDescriptions = map[ProficiencyLevel]string{
	LevelBeginner:     "Just starting out",
	LevelElementary:   "Basic understanding",
	LevelIntermediate: "Comfortable with fundamentals",
	LevelAdvanced:     "Strong expertise",
	LevelExpert:       "Master level",
}

// Levels returns all proficiency levels in ascending order.
func Levels() []ProficiencyLevel {
	out := make([]ProficiencyLevel, len(levelOrder))
	copy(out, levelOrder)
	return out
}

// Index returns the position of l in the ascending order, or -1 if l is not
// a known level.
func (l ProficiencyLevel) Index() int {
	for i, v := range levelOrder {
		if v == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the five known levels.
func (l ProficiencyLevel) Valid() bool {
	return l.Index() >= 0
}

// Label returns the capitalized display name, e.g. "Intermediate".
func (l ProficiencyLevel) Label() string {
	if l == "" {
		return ""
	}
	s := string(l)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Description returns the short blurb shown next to the level in forms.
func (l ProficiencyLevel) Description() string {
	return levelDescriptions[l]
}

// ParseLevel converts a case-insensitive level name into a ProficiencyLevel.
func ParseLevel(s string) (ProficiencyLevel, error) {
	l := ProficiencyLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown proficiency level %q (want one of %s)", s, levelNames())
	}
	return l, nil
}

func levelNames() string {
	names := make([]string, len(levelOrder))
	for i, l := range levelOrder {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

// LessonKind tags the format of a lesson.
type LessonKind string

const (
	LessonVideo    LessonKind = "video"
	LessonReading  LessonKind = "reading"
	LessonExercise LessonKind = "exercise"
	LessonProject  LessonKind = "project"
)

// ValidLessonKinds is the canonical set of accepted lesson kind strings.
var ValidLessonKinds = map[string]bool{
	"video": true, "reading": true, "exercise": true, "project": true,
}

// Tier names one of the five predefined module templates.
type Tier string

const (
	TierIntroduction Tier = "introduction"
	TierFundamentals Tier = "fundamentals"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
	TierMastery      Tier = "mastery"
)
