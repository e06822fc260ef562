package cli

import (
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formLink is a shortcut from a form page to a related page.
type formLink struct {
	key  string
	desc string
	view nav.ViewName
}

// formView wraps a huh.Form as a full page. Field values live in the
// caller's input struct, so the form can be rebuilt after a failed submit
// without losing what was typed.
type formView struct {
	state    *SharedState
	id       nav.ViewName
	intro    string
	build    func() *huh.Form
	submit   func(v *formView) (tea.Cmd, error)
	links    []formLink
	form     *huh.Form
	err      error
	done     bool
	notice   string // set once a submit needs no further navigation
	noticeTo nav.ViewName
}

func newFormView(state *SharedState, id nav.ViewName, intro string, build func() *huh.Form, submit func(v *formView) (tea.Cmd, error), links ...formLink) *formView {
	return &formView{
		state:  state,
		id:     id,
		intro:  intro,
		build:  build,
		submit: submit,
		links:  links,
		form:   build(),
	}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) ID() nav.ViewName { return v.id }
func (v *formView) Title() string    { return v.id.Title() }

// CapturesInput keeps q and : typed into fields out of the global bindings.
func (v *formView) CapturesInput() bool { return v.notice == "" }

func (v *formView) ShortHelp() []key.Binding {
	if v.notice != "" {
		return []key.Binding{binding("enter", "continue")}
	}
	hints := []key.Binding{
		binding("enter", "next"),
		binding("shift+tab", "previous"),
	}
	for _, l := range v.links {
		hints = append(hints, binding(l.key, l.desc))
	}
	return append(hints, binding("esc", "back"))
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if v.done && !isKey {
		return v, nil
	}
	if isKey {
		if v.notice != "" {
			switch keyMsg.String() {
			case "enter":
				return v, navigateTo(v.noticeTo)
			case "esc":
				return v, goBack()
			}
			return v, nil
		}
		if keyMsg.Type == tea.KeyEsc {
			return v, goBack()
		}
		if v.done {
			return v, nil
		}
		for _, l := range v.links {
			if keyMsg.String() == l.key {
				return v, navigateTo(l.view)
			}
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateAborted:
		return v, goBack()
	case huh.StateCompleted:
		next, err := v.submit(v)
		if err != nil {
			v.err = err
			v.form = v.build()
			return v, v.form.Init()
		}
		v.err = nil
		v.done = true
		return v, next
	}
	return v, cmd
}

// showNotice replaces the form with a message; enter continues to view.
func (v *formView) showNotice(text string, to nav.ViewName) {
	v.notice = text
	v.noticeTo = to
}

func (v *formView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	if v.notice != "" {
		b.WriteString(formatter.RenderBox(v.Title(), v.notice))
		b.WriteString("\n")
		return b.String()
	}
	if v.intro != "" {
		b.WriteString("  " + formatter.Dim(v.intro) + "\n\n")
	}
	if v.err != nil {
		for _, line := range strings.Split(v.err.Error(), "\n") {
			b.WriteString("  " + formatter.StyleRed.Render("✗ "+line) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(v.form.View())
	return b.String()
}
