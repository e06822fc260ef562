package cli

import (
	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/fixtures"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dashboardView lists generated courses (newest first) followed by the
// enrolled fixture courses.
type dashboardView struct {
	state   *SharedState
	courses []*domain.Course
	cursor  int
}

func newDashboardView(s *SharedState) View {
	v := &dashboardView{state: s}
	if s.App.Courses != nil {
		v.courses = append(v.courses, s.App.Courses.Generated()...)
		v.courses = append(v.courses, s.App.Courses.Enrolled()...)
	}
	return v
}

func (v *dashboardView) ID() nav.ViewName { return nav.ViewDashboard }
func (v *dashboardView) Title() string    { return nav.ViewDashboard.Title() }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		binding("enter", "open"),
		binding("n", "new course"),
		binding("p", "progress"),
		binding("c", "certificates"),
		binding("u", "profile"),
		binding("o", "log out"),
	}
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.courses)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(v.courses) {
			return v, selectCourse(v.courses[v.cursor])
		}
	case "n":
		return v, navigateTo(nav.ViewCourseBuilder)
	case "p":
		return v, navigateTo(nav.ViewProgress)
	case "c":
		return v, navigateTo(nav.ViewCertificates)
	case "u":
		return v, navigateTo(nav.ViewProfile)
	case "o":
		return v, logout()
	}
	return v, nil
}

func (v *dashboardView) View() string {
	var stats []fixtures.Stat
	if f := v.state.App.Fixtures; f != nil {
		stats = f.DashboardStats
	}
	selected := -1
	if len(v.courses) > 0 {
		selected = v.cursor
	}
	body := formatter.FormatDashboard(v.state.User, stats, v.courses, selected)
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
