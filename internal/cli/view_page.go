package cli

import (
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pageKey is a single-key shortcut on a page.
type pageKey struct {
	binding key.Binding
	run     func() tea.Cmd
}

func shortcut(keys, desc string, run func() tea.Cmd) pageKey {
	return pageKey{binding: binding(keys, desc), run: run}
}

// pageView renders read-mostly content in a scrollable viewport. The
// content is re-rendered after every handled key, so shortcuts may mutate
// whatever render reads.
type pageView struct {
	state  *SharedState
	id     nav.ViewName
	render func() string
	keys   []pageKey
	vp     viewport.Model
}

func newPageView(s *SharedState, id nav.ViewName, render func() string, keys ...pageKey) *pageView {
	vp := viewport.New(s.Width, s.ContentHeight())
	vp.KeyMap = pageViewportKeyMap()
	v := &pageView{state: s, id: id, render: render, keys: keys, vp: vp}
	v.refresh()
	return v
}

func (v *pageView) ID() nav.ViewName { return v.id }
func (v *pageView) Title() string    { return v.id.Title() }

func (v *pageView) ShortHelp() []key.Binding {
	hints := make([]key.Binding, 0, len(v.keys))
	for _, k := range v.keys {
		hints = append(hints, k.binding)
	}
	return hints
}

func (v *pageView) Init() tea.Cmd { return nil }

func (v *pageView) refresh() {
	content := lipgloss.NewStyle().Padding(1, 2).Render(v.render())
	v.vp.SetContent(content)
}

func (v *pageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		for _, k := range v.keys {
			if key.Matches(msg, k.binding) {
				cmd := k.run()
				v.refresh()
				return v, cmd
			}
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *pageView) View() string {
	if v.state.Height == 0 {
		// Unsized (tests, first frame): render everything.
		return lipgloss.NewStyle().Padding(1, 2).Render(v.render())
	}
	return v.vp.View()
}

// pageViewportKeyMap scrolls with arrows and page keys only, leaving
// letters for page shortcuts.
func pageViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
