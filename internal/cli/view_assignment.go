package cli

import (
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/fixtures"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type assignmentView struct {
	state      *SharedState
	assignment fixtures.Assignment
	editor     textarea.Model
	editing    bool
	submitted  bool
	submission string
}

func newAssignmentView(s *SharedState) View {
	ta := textarea.New()
	ta.Placeholder = "Write your solution or paste a link to it..."
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.SetWidth(60)

	v := &assignmentView{state: s, editor: ta}
	if s.App.Fixtures != nil {
		v.assignment = s.App.Fixtures.Assignment
	}
	return v
}

func (v *assignmentView) ID() nav.ViewName { return nav.ViewAssignments }
func (v *assignmentView) Title() string    { return nav.ViewAssignments.Title() }

func (v *assignmentView) CapturesInput() bool { return v.editing }

func (v *assignmentView) ShortHelp() []key.Binding {
	if v.editing {
		return []key.Binding{binding("ctrl+s", "submit"), binding("esc", "stop editing")}
	}
	if v.submitted {
		return []key.Binding{binding("w", "edit submission")}
	}
	return []key.Binding{binding("w", "write submission")}
}

func (v *assignmentView) Init() tea.Cmd { return nil }

func (v *assignmentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		v.editor.SetWidth(min(max(wm.Width-6, 20), 100))
		return v, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !v.editing {
		if isKey && keyMsg.String() == "w" {
			v.editing = true
			return v, v.editor.Focus()
		}
		return v, nil
	}

	if isKey {
		switch keyMsg.String() {
		case "esc":
			v.editing = false
			v.editor.Blur()
			return v, nil
		case "ctrl+s":
			text := strings.TrimSpace(v.editor.Value())
			if text == "" {
				return v, nil
			}
			v.submission = text
			v.submitted = true
			v.editing = false
			v.editor.Blur()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

func (v *assignmentView) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatAssignment(v.assignment, v.submission, v.submitted))
	if v.editing || !v.submitted {
		b.WriteString("\n")
		b.WriteString(formatter.Header("Your Submission"))
		b.WriteString("\n")
		b.WriteString(v.editor.View())
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
