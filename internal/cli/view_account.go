package cli

import (
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// profileView shows the session user and switches to an edit form on e.
// Edits last for the session.
type profileView struct {
	state *SharedState
	in    profileInput
	form  *huh.Form
}

func newProfileView(s *SharedState) View {
	return &profileView{state: s}
}

func (v *profileView) ID() nav.ViewName { return nav.ViewProfile }
func (v *profileView) Title() string    { return nav.ViewProfile.Title() }

func (v *profileView) CapturesInput() bool { return v.form != nil }

func (v *profileView) ShortHelp() []key.Binding {
	if v.form != nil {
		return []key.Binding{binding("enter", "save"), binding("esc", "cancel")}
	}
	return []key.Binding{
		binding("e", "edit profile"),
		binding("p", "progress"),
		binding("c", "certificates"),
		binding("o", "log out"),
	}
}

func (v *profileView) Init() tea.Cmd { return nil }

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.form != nil {
		return v.updateForm(msg)
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "e":
		v.in = profileInput{Name: v.state.User.Name, Email: v.state.User.Email}
		v.form = wizardProfile(&v.in)
		return v, v.form.Init()
	case "p":
		return v, navigateTo(nav.ViewProgress)
	case "c":
		return v, navigateTo(nav.ViewCertificates)
	case "o":
		return v, logout()
	}
	return v, nil
}

func (v *profileView) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		v.form = nil
		return v, nil
	}
	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	switch v.form.State {
	case huh.StateAborted:
		v.form = nil
	case huh.StateCompleted:
		v.state.User.Name = strings.TrimSpace(v.in.Name)
		v.state.User.Email = strings.TrimSpace(v.in.Email)
		v.form = nil
		return v, output(formatter.StyleGreen.Render("✔ Profile updated."))
	}
	return v, cmd
}

func (v *profileView) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatProfile(v.state.User))
	if v.form != nil {
		b.WriteString("\n")
		b.WriteString(formatter.Header("Edit Profile"))
		b.WriteString("\n")
		b.WriteString(v.form.View())
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func newProgressView(s *SharedState) View {
	render := func() string {
		if s.App.Fixtures == nil {
			return formatter.Dim("No progress recorded yet.")
		}
		return formatter.FormatProgress(s.App.Fixtures.Progress)
	}
	return newPageView(s, nav.ViewProgress, render,
		shortcut("c", "certificates", func() tea.Cmd { return navigateTo(nav.ViewCertificates) }),
		shortcut("d", "dashboard", func() tea.Cmd { return navigateTo(nav.ViewDashboard) }),
	)
}
