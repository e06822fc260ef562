package cli

import (
	"testing"

	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBar_FocusAndEscape(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey(':')
	assert.True(t, d.CmdBarFocused())
	d.Type("go dash")
	d.PressEsc()
	assert.False(t, d.CmdBarFocused())
	assert.Equal(t, nav.ViewLanding, d.ActiveViewID(), "esc discards the command")
}

func TestCommandBar_GoByPathAndName(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("go /certificates")
	assert.Equal(t, nav.ViewCertificates, d.ActiveViewID())
	assert.False(t, d.CmdBarFocused())

	d.Command("go course-builder")
	assert.Equal(t, nav.ViewCourseBuilder, d.ActiveViewID())

	d.PressEsc() // form back
	assert.Equal(t, nav.ViewCertificates, d.ActiveViewID())

	d.Command("go /course/web-development-fundamentals/lesson")
	assert.Equal(t, nav.ViewLesson, d.ActiveViewID())
	require.NotNil(t, d.SelectedCourse())
	assert.Equal(t, "web-development-fundamentals", d.SelectedCourse().ID)
}

func TestCommandBar_GoUnknownView(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Command("go settings")

	assert.Equal(t, nav.ViewLanding, d.ActiveViewID())
	assert.True(t, d.OutputActive())
	assert.Contains(t, d.LastOutput(), `unknown view "settings"`)

	// Any non-scroll key dismisses the output.
	d.PressEsc()
	assert.False(t, d.OutputActive())
}

func TestCommandBar_BackAndLogout(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Go("/course/data-science-essentials")
	d.Go("/progress")

	d.Command("back")
	assert.Equal(t, nav.ViewCourseOutline, d.ActiveViewID())
	require.NotNil(t, d.SelectedCourse())

	d.Command("logout")
	assert.Equal(t, nav.ViewLanding, d.ActiveViewID())
	assert.Nil(t, d.SelectedCourse())
	assert.False(t, d.State().Nav.CanGoBack())
}

func TestCommandBar_Output(t *testing.T) {
	tests := []struct {
		cmd  string
		want []string
	}{
		{"help", []string{"COMMAND", "go <path|view>", "export <markdown|json>"}},
		{"views", []string{"landing", "/course/:id/lesson"}},
		{"where", []string{"/", "landing"}},
		{"export", []string{"Build a course first"}},
		{"frobnicate", []string{`Unknown command "frobnicate"`}},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			d := NewTestDriver(t, testApp(t))
			d.Command(tt.cmd)
			require.True(t, d.OutputActive())
			d.AssertViewContains(tt.want...)
		})
	}
}

func TestCommandBar_ExportSelectedPlan(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('g')
	d.Type("Rust")
	for range 4 {
		d.PressEnter()
	}
	require.Equal(t, nav.ViewCourseOutline, d.ActiveViewID())

	d.Command("export json")
	assert.Contains(t, d.LastOutput(), `"skill": "Rust"`)

	d.PressEsc()
	d.Command("export md")
	assert.Contains(t, d.LastOutput(), "# Rust")

	d.PressEsc()
	d.Command("export pdf")
	assert.Contains(t, d.LastOutput(), `unknown export format "pdf"`)
}

func TestCommandBar_Quit(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Command("exit")
	assert.True(t, d.Quitting)
}

func TestCommandBar_History(t *testing.T) {
	bar := newCommandBar(newSharedState(testApp(t)))
	bar.addHistory("go /dashboard")
	bar.addHistory("views")

	bar.historyUp()
	assert.Equal(t, "views", bar.input.Value())
	bar.historyUp()
	assert.Equal(t, "go /dashboard", bar.input.Value())
	bar.historyUp()
	assert.Equal(t, "go /dashboard", bar.input.Value(), "stops at the oldest entry")

	bar.historyDown()
	assert.Equal(t, "views", bar.input.Value())
	bar.historyDown()
	assert.Equal(t, "", bar.input.Value())
}

func TestCommandBar_GoTargetsIncludeCourses(t *testing.T) {
	bar := newCommandBar(newSharedState(testApp(t)))
	targets := bar.goTargets()

	assert.Contains(t, targets, "dashboard")
	assert.Contains(t, targets, "/builder")
	assert.Contains(t, targets, "/course/web-development-fundamentals")
}

func TestFilterSuggestions(t *testing.T) {
	candidates := []string{"go", "back", "Logout", "logout", "views"}

	assert.Equal(t, []string{"Logout", "logout"}, filterSuggestions(candidates, "LO"))
	assert.Equal(t, []string{"go"}, filterSuggestions(candidates, "g"))
	assert.Len(t, filterSuggestions(candidates, ""), 5)
	assert.Empty(t, filterSuggestions(candidates, "x"))
	assert.Equal(t, []string{"go"}, filterSuggestions([]string{"go", "go"}, ""), "duplicates collapse")
}
