// Package planner derives a learning plan from a course plan request.
//
// Everything here is a pure function of its inputs: no I/O, no clock and no
// randomness, so identical requests always produce deep-equal plans.
package planner

import (
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
)

const (
	// weeksPerLevel is the full-time-equivalent study time per level step.
	weeksPerLevel = 8
	// baselineWeeklyHours is the weekly budget weeksPerLevel assumes.
	baselineWeeklyHours = 5
	// hoursPerLevel is the content volume per level step.
	hoursPerLevel = 40
)

// GeneratePlan validates req and builds its CoursePlan.
// The only failure is an error wrapping domain.ErrInvalidRequest.
func GeneratePlan(req domain.CoursePlanRequest) (*domain.CoursePlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	distance := req.LevelDistance()
	skill := strings.TrimSpace(req.SkillName)

	n := ModuleCount(distance)
	modules := make([]domain.Module, 0, n)
	for i := 0; i < n; i++ {
		modules = append(modules, catalog[i].instantiate(i+1, skill))
	}

	return &domain.CoursePlan{
		Request:        req,
		Modules:        modules,
		EstimatedWeeks: EstimatedWeeks(distance, req.WeeklyHours),
		TotalHours:     TotalHours(distance),
	}, nil
}

// ModuleCount returns clamp(distance+2, 1, MaxModules).
func ModuleCount(distance int) int {
	return clamp(distance+2, 1, MaxModules)
}

// EstimatedWeeks returns ceil((distance*8) / (weeklyHours/5)), evaluated
// exactly as ceil(distance*8*5 / weeklyHours). weeklyHours must be positive.
func EstimatedWeeks(distance, weeklyHours int) int {
	return ceilDiv(distance*weeksPerLevel*baselineWeeklyHours, weeklyHours)
}

// TotalHours returns the total content hours for a level distance.
func TotalHours(distance int) int {
	return distance * hoursPerLevel
}

// ContentHours is the builder's up-front content estimate for a weekly
// budget, ceil(40*h/7).
func ContentHours(weeklyHours int) int {
	return ceilDiv(hoursPerLevel*weeklyHours, 7)
}

// Pace labels a weekly time budget.
func Pace(weeklyHours int) string {
	switch {
	case weeklyHours <= 5:
		return "Steady pace"
	case weeklyHours <= 15:
		return "Balanced learning"
	default:
		return "Fast track"
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
