package cli

import (
	"fmt"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/alexanderramin/learnpath/internal/planner"
	tea "github.com/charmbracelet/bubbletea"
)

// newOutlineView shows the selected course. Generated courses render their
// plan; fixture courses render their module list.
func newOutlineView(s *SharedState) View {
	render := func() string {
		c := s.Nav.SelectedCourse()
		out := formatter.FormatCourseOutline(c)
		if c != nil && c.Plan != nil {
			h := c.Plan.Request.WeeklyHours
			out += "\n" + formatter.Dim(fmt.Sprintf("%s · %d h/week", planner.Pace(h), h))
		}
		return out
	}
	return newPageView(s, nav.ViewCourseOutline, render,
		shortcut("l", "start lesson", func() tea.Cmd { return navigateTo(nav.ViewLesson) }),
		shortcut("z", "quiz", func() tea.Cmd { return navigateTo(nav.ViewQuiz) }),
		shortcut("a", "assignment", func() tea.Cmd { return navigateTo(nav.ViewAssignments) }),
		shortcut("e", "export & share", func() tea.Cmd { return navigateTo(nav.ViewExportShare) }),
		shortcut("d", "dashboard", func() tea.Cmd { return navigateTo(nav.ViewDashboard) }),
	)
}

func newLessonView(s *SharedState) View {
	completed := false
	render := func() string {
		if s.App.Fixtures == nil {
			return formatter.Dim("No lesson content available.")
		}
		return formatter.FormatLesson(s.App.Fixtures.Lesson, completed)
	}
	return newPageView(s, nav.ViewLesson, render,
		shortcut("c", "mark complete", func() tea.Cmd {
			completed = !completed
			return nil
		}),
		shortcut("z", "quiz", func() tea.Cmd { return navigateTo(nav.ViewQuiz) }),
		shortcut("a", "assignment", func() tea.Cmd { return navigateTo(nav.ViewAssignments) }),
		shortcut("o", "outline", func() tea.Cmd { return navigateTo(nav.ViewCourseOutline) }),
	)
}
