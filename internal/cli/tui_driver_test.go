package cli

import (
	"testing"

	"github.com/alexanderramin/learnpath/internal/config"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/alexanderramin/learnpath/internal/service"
	"github.com/alexanderramin/learnpath/internal/teatest"
	"github.com/alexanderramin/learnpath/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

// testApp wires an App over the embedded fixtures with a fresh course
// registry.
func testApp(t *testing.T) *App {
	t.Helper()
	fx := testutil.MustFixtures(t)
	courses := service.NewCourseService(fx)
	return &App{
		Plans:    service.NewPlanService(courses),
		Courses:  courses,
		Fixtures: fx,
		Config:   config.DefaultConfig(),
	}
}

// TestDriver wraps teatest.Driver with inspection of the appModel's
// navigator and command bar.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel, sizes the terminal and drains Init.
// The terminal is tall enough that no page needs scrolling.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 150))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Command focuses the command bar with ':', types the command, and presses
// Enter. Enter always blurs the bar.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
}

// Go opens path through the command bar.
func (d *TestDriver) Go(path string) {
	d.T.Helper()
	d.Command("go " + path)
}

var ctrlKeys = map[rune]tea.KeyType{
	'l': tea.KeyCtrlL,
	'n': tea.KeyCtrlN,
	'r': tea.KeyCtrlR,
	's': tea.KeyCtrlS,
}

// ctrlKey returns the key message for ctrl plus r.
func ctrlKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: ctrlKeys[r]}
}

// ── inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Current is the navigator's current view.
func (d *TestDriver) Current() nav.ViewName {
	return d.State().Nav.Current()
}

// ActiveViewID is the ID of the view the model renders; it must always
// agree with Current.
func (d *TestDriver) ActiveViewID() nav.ViewName {
	return d.appModel().view.ID()
}

func (d *TestDriver) SelectedCourse() *domain.Course {
	return d.State().Nav.SelectedCourse()
}

func (d *TestDriver) Path() string {
	return d.State().Nav.Path()
}

func (d *TestDriver) CmdBarFocused() bool {
	return d.appModel().cmdBar.Focused()
}

func (d *TestDriver) OutputActive() bool {
	return d.appModel().outputActive
}

func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}
