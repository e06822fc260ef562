package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/fixtures"
	"github.com/alexanderramin/learnpath/internal/planner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testSkillCounter atomic.Int64

// Request options
type RequestOption func(*domain.CoursePlanRequest)

func WithLevels(current, target domain.ProficiencyLevel) RequestOption {
	return func(r *domain.CoursePlanRequest) {
		r.CurrentLevel = current
		r.TargetLevel = target
	}
}

func WithWeeklyHours(h int) RequestOption {
	return func(r *domain.CoursePlanRequest) {
		r.WeeklyHours = h
	}
}

// NewTestRequest returns a valid beginner → intermediate request at the
// default weekly budget.
func NewTestRequest(skill string, opts ...RequestOption) domain.CoursePlanRequest {
	r := domain.CoursePlanRequest{
		SkillName:    skill,
		WeeklyHours:  domain.DefaultWeeklyHours,
		CurrentLevel: domain.LevelBeginner,
		TargetLevel:  domain.LevelIntermediate,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// UniqueSkill returns a skill name whose slug no other call produces.
func UniqueSkill(prefix string) string {
	n := testSkillCounter.Add(1)
	return fmt.Sprintf("%s %d %s", prefix, n, uuid.NewString()[:8])
}

// NewTestPlan generates a plan for a test request and fails the test on
// error.
func NewTestPlan(t *testing.T, skill string, opts ...RequestOption) *domain.CoursePlan {
	t.Helper()
	plan, err := planner.GeneratePlan(NewTestRequest(skill, opts...))
	require.NoError(t, err)
	return plan
}

// Course options
type CourseOption func(*domain.Course)

func WithProgress(pct int) CourseOption {
	return func(c *domain.Course) {
		c.Progress = pct
	}
}

func WithModules(modules ...domain.CourseModule) CourseOption {
	return func(c *domain.Course) {
		c.Modules = modules
	}
}

func NewTestCourse(id, title string, opts ...CourseOption) *domain.Course {
	c := &domain.Course{
		ID:       id,
		Title:    title,
		Level:    "Beginner",
		Duration: "4 weeks",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MustFixtures loads the embedded fixture document.
func MustFixtures(t *testing.T) *fixtures.Fixtures {
	t.Helper()
	f, err := fixtures.Load()
	require.NoError(t, err)
	return f
}
