package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "learnpath")
	assert.Contains(t, out, "plan")
	assert.Contains(t, out, "views")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }
	_, err := executeCmd(t, app, "tui", "--path", "/dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestPlanCmd_Text(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan", "--skill", "Machine Learning", "--hours", "10")
	out = ansi.Strip(out)
	require.NoError(t, err)
	assert.Contains(t, out, "Machine Learning")
	assert.Contains(t, out, "8 weeks")
	assert.Contains(t, out, "80")
}

func TestPlanCmd_Markdown(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan", "--skill", "Go", "--from", "Intermediate", "--to", "expert", "--format", "md")
	require.NoError(t, err)
	assert.Contains(t, out, "# Go")
}

func TestPlanCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan", "--skill", "Go", "--from", "beginner", "--to", "expert", "--hours", "1", "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.EqualValues(t, 160, doc["estimated_weeks"])
	assert.EqualValues(t, 160, doc["total_hours"])
	modules, ok := doc["modules"].([]any)
	require.True(t, ok)
	assert.Len(t, modules, 5)
}

func TestPlanCmd_HoursAboveFormRange(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan", "--skill", "Go", "--hours", "60", "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.EqualValues(t, 2, doc["estimated_weeks"])
	assert.EqualValues(t, 80, doc["total_hours"])
}

func TestPlanCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing skill", []string{"plan"}, "skill"},
		{"unknown level", []string{"plan", "--skill", "Go", "--from", "wizard"}, "wizard"},
		{"same level", []string{"plan", "--skill", "Go", "--from", "advanced", "--to", "advanced"}, "must differ"},
		{"downward", []string{"plan", "--skill", "Go", "--from", "expert", "--to", "beginner"}, "below current level"},
		{"negative hours", []string{"plan", "--skill", "Go", "--hours", "-5"}, "must be positive"},
		{"zero hours", []string{"plan", "--skill", "Go", "--hours", "0"}, "must be positive"},
		{"bad format", []string{"plan", "--skill", "Go", "--format", "pdf"}, "unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestViewsCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "views")
	require.NoError(t, err)
	for _, want := range []string{"landing", "/builder", "course-outline", "/course/:id/lesson", "certificate"} {
		assert.Contains(t, out, want)
	}
}

func TestRouteCmd(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/course/web-development-fundamentals/lesson", []string{"lesson", "web-development-fundamentals"}},
		{"/dashboard/", []string{"dashboard", "canonical: /dashboard"}},
		{"/nowhere", []string{"landing", "canonical: /"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			out, err := executeCmd(t, testApp(t), "route", tt.path)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, ansi.Strip(out), w)
			}
		})
	}
}

func TestRouteCmd_RequiresPath(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "route")
	assert.Error(t, err)
}
