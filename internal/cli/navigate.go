package cli

import (
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request transitions. The appModel
// applies them to the navigator, which then triggers a view rebuild.

type navigateMsg struct {
	view nav.ViewName
}

type navigatePathMsg struct {
	path string
}

type selectCourseMsg struct {
	course *domain.Course
}

type backMsg struct{}

type logoutMsg struct{}

type quitMsg struct{}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the content area.
type cmdOutputMsg struct {
	output string
}

func navigateTo(v nav.ViewName) tea.Cmd {
	return func() tea.Msg { return navigateMsg{view: v} }
}

func navigatePath(path string) tea.Cmd {
	return func() tea.Msg { return navigatePathMsg{path: path} }
}

func selectCourse(c *domain.Course) tea.Cmd {
	return func() tea.Msg { return selectCourseMsg{course: c} }
}

func goBack() tea.Cmd {
	return func() tea.Msg { return backMsg{} }
}

func logout() tea.Cmd {
	return func() tea.Msg { return logoutMsg{} }
}

func output(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}
