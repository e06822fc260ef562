package cli

import (
	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type certificatesView struct {
	state  *SharedState
	cursor int
}

func newCertificatesView(s *SharedState) View {
	return &certificatesView{state: s, cursor: s.CertificateIndex}
}

func (v *certificatesView) ID() nav.ViewName { return nav.ViewCertificates }
func (v *certificatesView) Title() string    { return nav.ViewCertificates.Title() }

func (v *certificatesView) ShortHelp() []key.Binding {
	return []key.Binding{binding("enter", "view certificate"), binding("p", "progress")}
}

func (v *certificatesView) Init() tea.Cmd { return nil }

func (v *certificatesView) count() int {
	if v.state.App.Fixtures == nil {
		return 0
	}
	return len(v.state.App.Fixtures.Certificates)
}

func (v *certificatesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if v.cursor < v.count()-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < v.count() {
			v.state.CertificateIndex = v.cursor
			return v, navigateTo(nav.ViewCertificate)
		}
	case "p":
		return v, navigateTo(nav.ViewProgress)
	}
	return v, nil
}

func (v *certificatesView) View() string {
	body := formatter.Dim("You have not earned any certificates yet.")
	if v.count() > 0 {
		body = formatter.FormatCertificates(v.state.App.Fixtures.Certificates, v.cursor)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func newCertificateView(s *SharedState) View {
	render := func() string {
		cert, ok := s.Certificate()
		if !ok {
			return formatter.Dim("Certificate not found.")
		}
		out := formatter.FormatCertificate(cert, s.User.Name)
		if !cert.Verified() {
			out += "\n" + formatter.StyleYellow.Render("This certificate is still in progress.")
		}
		return out
	}
	return newPageView(s, nav.ViewCertificate, render,
		shortcut("l", "all certificates", func() tea.Cmd { return navigateTo(nav.ViewCertificates) }),
	)
}
