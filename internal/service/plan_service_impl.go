package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/planner"
)

type planService struct {
	courses  CourseService
	observer UseCaseObserver
}

// NewPlanService returns a PlanService that registers built courses with
// courses. courses may be nil, in which case BuildCourse does not register.
func NewPlanService(courses CourseService, observers ...UseCaseObserver) PlanService {
	return &planService{
		courses:  courses,
		observer: combineObservers(observers),
	}
}

func (s *planService) Generate(ctx context.Context, req domain.CoursePlanRequest) (plan *domain.CoursePlan, err error) {
	startedAt := time.Now()
	attrs := []slog.Attr{
		slog.String("skill", req.SkillName),
		slog.String("from", string(req.CurrentLevel)),
		slog.String("to", string(req.TargetLevel)),
		slog.Int("weekly_hours", req.WeeklyHours),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Attrs:     attrs,
		})
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	plan, err = planner.GeneratePlan(req)
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}
	attrs = append(attrs,
		slog.Int("modules", len(plan.Modules)),
		slog.Int("weeks", plan.EstimatedWeeks),
		slog.Int("total_hours", plan.TotalHours),
	)
	return plan, nil
}

func (s *planService) BuildCourse(ctx context.Context, req domain.CoursePlanRequest) (*domain.Course, error) {
	plan, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	course := domain.CourseFromPlan(plan)
	if s.courses != nil {
		s.courses.Register(course)
	}
	return course, nil
}
