package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI. It renders exactly the
// view for the navigator's current state plus a persistent command bar.
type appModel struct {
	state    *SharedState
	view     View
	cmdBar   commandBar
	quitting bool

	// Transient output from the command bar, displayed in content area.
	lastOutput string

	// Scrollable viewport for command output that exceeds terminal height.
	outputVP     viewport.Model
	outputActive bool // true when lastOutput is being displayed in the viewport
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)
	if start := app.Config.StartPath; start != "" && start != "/" {
		state.Nav.NavigateToPath(start, app.Courses)
	}
	state.dirty = false

	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return appModel{
		state:    state,
		view:     buildView(state),
		cmdBar:   newCommandBar(state),
		outputVP: vp,
	}
}

// buildView constructs the view for the navigator's current state.
func buildView(s *SharedState) View {
	switch s.Nav.Current() {
	case nav.ViewLogin:
		return newLoginView(s)
	case nav.ViewSignup:
		return newSignupView(s)
	case nav.ViewPasswordReset:
		return newPasswordResetView(s)
	case nav.ViewDashboard:
		return newDashboardView(s)
	case nav.ViewCourseBuilder:
		return newCourseBuilderView(s)
	case nav.ViewCourseOutline:
		return newOutlineView(s)
	case nav.ViewLesson:
		return newLessonView(s)
	case nav.ViewQuiz:
		return newQuizView(s)
	case nav.ViewAssignments:
		return newAssignmentView(s)
	case nav.ViewExportShare:
		return newExportView(s)
	case nav.ViewProfile:
		return newProfileView(s)
	case nav.ViewProgress:
		return newProgressView(s)
	case nav.ViewCertificates:
		return newCertificatesView(s)
	case nav.ViewCertificate:
		return newCertificateView(s)
	default:
		return newLandingView(s)
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.view.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next, cmd = next.syncView(cmd)
	return next, cmd
}

// syncView rebuilds the active view after the navigator reported a
// transition.
func (m appModel) syncView(cmd tea.Cmd) (appModel, tea.Cmd) {
	if !m.state.dirty {
		return m, cmd
	}
	m.state.dirty = false
	m.cmdBar.Blur()
	m.clearOutput()
	m.view = buildView(m.state)
	if m.state.Width > 0 {
		updated, _ := m.view.Update(tea.WindowSizeMsg{Width: m.state.Width, Height: m.state.Height})
		m.view = updated.(View)
	}
	return m, tea.Batch(cmd, m.view.Init())
}

func (m appModel) update(msg tea.Msg) (appModel, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.cmdBar.SetWidth(msg.Width)
		if m.outputActive {
			m.outputVP.Width = msg.Width
			m.outputVP.Height = m.state.ContentHeight()
		}
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.outputActive {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}

	case navigateMsg:
		m.state.Nav.NavigateTo(msg.view)
		return m, nil

	case navigatePathMsg:
		m.state.Nav.NavigateToPath(msg.path, m.state.App.Courses)
		return m, nil

	case selectCourseMsg:
		m.state.Nav.SelectCourse(msg.course)
		return m, nil

	case backMsg:
		m.state.Nav.Back()
		return m, nil

	case logoutMsg:
		m.state.Nav.Logout()
		if m.state.App.Fixtures != nil {
			m.state.User = m.state.App.Fixtures.User
		}
		return m, nil

	case cmdOutputMsg:
		m.lastOutput = msg.output
		m.outputActive = true
		m.outputVP.SetContent(msg.output)
		m.outputVP.Width = m.state.Width
		m.outputVP.Height = m.state.ContentHeight()
		m.outputVP.GotoTop()
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Forward other messages to command bar (e.g., cursor blink)
	if m.cmdBar.Focused() {
		return m, m.cmdBar.UpdateNonKey(msg)
	}
	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (appModel, tea.Cmd) {
	updated, cmd := m.view.Update(msg)
	m.view = updated.(View)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// If command bar is focused, route keys there
	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.clearOutput()
		}
		return m, m.cmdBar.Update(msg)
	}

	// When output is displayed, intercept scroll keys for the viewport.
	// Non-scroll keys dismiss the output, then fall through to normal handling.
	if m.outputActive {
		if isOutputScrollKey(msg) {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		m.clearOutput()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	if viewCapturesInput(m.view) {
		return m.forward(msg)
	}

	switch {
	case msg.String() == ":":
		m.cmdBar.Focus()
		return m, nil

	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		m.state.Nav.Back()
		return m, nil
	}

	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.lastOutput != "" {
		if m.outputActive && m.state.Height > 0 {
			sections = append(sections, m.outputVP.View())
		} else {
			sections = append(sections, m.lastOutput)
		}
	} else {
		sections = append(sections, m.view.View())
	}

	sections = append(sections, m.renderStatusBar())
	sections = append(sections, m.cmdBar.View())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("learnpath")

	crumbs := []string{m.view.Title()}
	st := m.state.Nav.State()
	if st.Course != nil && (st.View == nav.ViewCourseOutline || st.View == nav.ViewLesson) {
		crumbs = append(crumbs, st.Course.Title)
	}
	header := title + " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	header += "  " + formatter.Dim(m.state.Nav.Path())

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.outputActive && m.outputVP.TotalLineCount() > m.outputVP.Height {
		hints = append(hints, scrollIndicator(m.outputVP))
		hints = append(hints, formatter.Dim("↑↓ pgup/pgdn: scroll"))
		hints = append(hints, formatter.Dim("esc: dismiss"))
	} else if !m.outputActive {
		for _, b := range m.view.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if !m.cmdBar.Focused() && !m.outputActive && !viewCapturesInput(m.view) {
		if m.state.Nav.CanGoBack() {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim(": command"))
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// clearOutput dismisses the transient command output and deactivates the viewport.
func (m *appModel) clearOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

// outputViewportKeyMap returns a restricted keymap for the output viewport.
// Only arrow/page keys scroll; letter keys stay free for global shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// isOutputScrollKey returns true if the key should scroll the output viewport
// rather than dismissing the output.
func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}
