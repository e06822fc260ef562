package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekly time budget bounds enforced by the course builder form.
const (
	MinWeeklyHours     = 1
	MaxWeeklyHours     = 40
	DefaultWeeklyHours = 10
)

// CoursePlanRequest holds the user-supplied parameters for a learning path.
type CoursePlanRequest struct {
	SkillName    string
	WeeklyHours  int
	CurrentLevel ProficiencyLevel
	TargetLevel  ProficiencyLevel
}

// LevelDistance returns TargetLevel.Index() - CurrentLevel.Index().
// The result is only meaningful when both levels are valid.
func (r CoursePlanRequest) LevelDistance() int {
	return r.TargetLevel.Index() - r.CurrentLevel.Index()
}

// Validate checks the request invariants. It returns an error wrapping
// ErrInvalidRequest describing the first violated field.
func (r CoursePlanRequest) Validate() error {
	if strings.TrimSpace(r.SkillName) == "" {
		return invalid("skill_name", "must not be empty")
	}
	if r.WeeklyHours <= 0 {
		return invalid("weekly_hours", fmt.Sprintf("must be positive, got %d", r.WeeklyHours))
	}
	if !r.CurrentLevel.Valid() {
		return invalid("current_level", fmt.Sprintf("unknown level %q", r.CurrentLevel))
	}
	if !r.TargetLevel.Valid() {
		return invalid("target_level", fmt.Sprintf("unknown level %q", r.TargetLevel))
	}
	if r.CurrentLevel == r.TargetLevel {
		return invalid("target_level", "must differ from current level")
	}
	if r.LevelDistance() < 0 {
		return invalid("target_level", fmt.Sprintf("%s is below current level %s", r.TargetLevel, r.CurrentLevel))
	}
	return nil
}

// HourRange is a module's estimated effort in hours. Max == 0 means
// open-ended ("20+ hours").
type HourRange struct {
	Min int
	Max int
}

func (h HourRange) String() string {
	if h.Max == 0 {
		return fmt.Sprintf("%d+ hours", h.Min)
	}
	return fmt.Sprintf("%d-%d hours", h.Min, h.Max)
}

// Lesson is one unit of study inside a module.
type Lesson struct {
	Title    string
	Kind     LessonKind
	Duration time.Duration
}

// Module is one tier of a generated course plan.
type Module struct {
	Sequence int
	Tier     Tier
	Title    string
	Duration HourRange
	Lessons  []Lesson
}

// LessonTime returns the sum of the module's lesson durations.
func (m Module) LessonTime() time.Duration {
	var total time.Duration
	for _, l := range m.Lessons {
		total += l.Duration
	}
	return total
}

// CoursePlan is the computed curriculum for a request.
type CoursePlan struct {
	Request        CoursePlanRequest
	Modules        []Module
	EstimatedWeeks int
	TotalHours     int
}

// LessonCount returns the number of lessons across all modules.
func (p *CoursePlan) LessonCount() int {
	n := 0
	for _, m := range p.Modules {
		n += len(m.Lessons)
	}
	return n
}

// CountByKind tallies lessons per kind across all modules.
func (p *CoursePlan) CountByKind() map[LessonKind]int {
	counts := make(map[LessonKind]int)
	for _, m := range p.Modules {
		for _, l := range m.Lessons {
			counts[l.Kind]++
		}
	}
	return counts
}
