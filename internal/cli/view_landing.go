package cli

import (
	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

func newLandingView(s *SharedState) View {
	render := func() string {
		if s.App.Fixtures == nil {
			return formatter.Dim("Welcome to LearnPath.")
		}
		return formatter.FormatLanding(s.App.Fixtures.Landing)
	}
	return newPageView(s, nav.ViewLanding, render,
		shortcut("g", "get started", func() tea.Cmd { return navigateTo(nav.ViewCourseBuilder) }),
		shortcut("l", "log in", func() tea.Cmd { return navigateTo(nav.ViewLogin) }),
		shortcut("s", "sign up", func() tea.Cmd { return navigateTo(nav.ViewSignup) }),
		shortcut("d", "dashboard", func() tea.Cmd { return navigateTo(nav.ViewDashboard) }),
	)
}
