package service

import (
	"context"

	"github.com/alexanderramin/learnpath/internal/domain"
)

type PlanService interface {
	// Generate computes a plan without side effects.
	Generate(ctx context.Context, req domain.CoursePlanRequest) (*domain.CoursePlan, error)
	// BuildCourse generates a plan, wraps it as a course and registers the
	// course so it is addressable by ID for the rest of the session.
	BuildCourse(ctx context.Context, req domain.CoursePlanRequest) (*domain.Course, error)
}

type CourseService interface {
	CourseByID(id string) (*domain.Course, bool)
	Enrolled() []*domain.Course
	Generated() []*domain.Course
	Register(c *domain.Course)
}
