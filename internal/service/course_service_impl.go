package service

import (
	"sync"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/fixtures"
)

// courseService resolves course IDs against the enrolled fixture courses and
// the courses generated during this session. Generated courses shadow
// fixtures with the same ID.
type courseService struct {
	fixtures *fixtures.Fixtures

	mu        sync.RWMutex
	generated map[string]*domain.Course
	order     []string
}

func NewCourseService(f *fixtures.Fixtures) CourseService {
	return &courseService{
		fixtures:  f,
		generated: make(map[string]*domain.Course),
	}
}

func (s *courseService) CourseByID(id string) (*domain.Course, bool) {
	s.mu.RLock()
	c, ok := s.generated[id]
	s.mu.RUnlock()
	if ok {
		return c, true
	}
	if s.fixtures == nil {
		return nil, false
	}
	return s.fixtures.CourseByID(id)
}

func (s *courseService) Enrolled() []*domain.Course {
	if s.fixtures == nil {
		return nil
	}
	return s.fixtures.EnrolledCourses()
}

// Generated returns generated courses, most recent first.
func (s *courseService) Generated() []*domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Course, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.generated[s.order[i]])
	}
	return out
}

// Register stores c under its ID, replacing any earlier course with the same
// ID. Courses without an ID are ignored.
func (s *courseService) Register(c *domain.Course) {
	if c == nil || c.ID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.generated[c.ID]; exists {
		for i, id := range s.order {
			if id == c.ID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.generated[c.ID] = c
	s.order = append(s.order, c.ID)
}
