package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// barCommand is one command accepted by the command bar.
type barCommand struct {
	name    string
	aliases []string
	usage   string
	help    string
	run     func(c *commandBar, args []string) tea.Cmd
}

var barCommands []barCommand

func init() {
	barCommands = []barCommand{
		{name: "go", usage: "go <path|view>", help: "open a view by path or name", run: (*commandBar).runGo},
		{name: "back", help: "return to the previous view", run: func(*commandBar, []string) tea.Cmd { return goBack() }},
		{name: "logout", help: "log out and return to the landing page", run: func(*commandBar, []string) tea.Cmd { return logout() }},
		{name: "views", help: "list every view and its path", run: func(*commandBar, []string) tea.Cmd {
			return output(formatter.FormatViews())
		}},
		{name: "where", help: "show the current path", run: (*commandBar).runWhere},
		{name: "export", usage: "export <markdown|json>", help: "print the selected plan", run: (*commandBar).runExport},
		{name: "help", help: "list commands", run: (*commandBar).runHelp},
		{name: "quit", aliases: []string{"exit"}, help: "leave learnpath", run: func(*commandBar, []string) tea.Cmd {
			return func() tea.Msg { return quitMsg{} }
		}},
	}
}

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{input: ti, state: state}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len(promptPlain) - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		c.Blur()
		if line == "" {
			return nil
		}
		c.addHistory(line)
		return c.execute(line)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.input.Reset()
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

const promptPlain = "learnpath > "

func (c *commandBar) View() string {
	prefix := formatter.StylePurple.Render("learnpath") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prefix + formatter.Dim("press : to type a command")
	}
	return prefix + c.input.View()
}

// ── execution ────────────────────────────────────────────────────────────────

func lookupCommand(name string) (barCommand, bool) {
	name = strings.ToLower(name)
	for _, bc := range barCommands {
		if bc.name == name {
			return bc, true
		}
		for _, a := range bc.aliases {
			if a == name {
				return bc, true
			}
		}
	}
	return barCommand{}, false
}

func (c *commandBar) execute(line string) tea.Cmd {
	fields := strings.Fields(line)
	bc, ok := lookupCommand(fields[0])
	if !ok {
		return output(formatter.StyleRed.Render(fmt.Sprintf("Unknown command %q.", fields[0])) +
			" " + formatter.Dim("Type help for a list."))
	}
	return bc.run(c, fields[1:])
}

func (c *commandBar) runGo(args []string) tea.Cmd {
	if len(args) != 1 {
		return output(formatter.Dim("usage: go <path|view>"))
	}
	target := args[0]
	if strings.HasPrefix(target, "/") {
		return navigatePath(target)
	}
	v, err := nav.ParseView(target)
	if err != nil {
		return output(formatter.StyleRed.Render(err.Error()))
	}
	return navigateTo(v)
}

func (c *commandBar) runWhere([]string) tea.Cmd {
	st := c.state.Nav.State()
	out := formatter.FormatRoute(c.state.Nav.Path(), st.Route())
	if st.Course != nil {
		out += formatter.Dim("selected: ") + st.Course.Title + "\n"
	}
	return output(out)
}

func (c *commandBar) runExport(args []string) tea.Cmd {
	course := c.state.Nav.SelectedCourse()
	if course == nil || course.Plan == nil {
		return output(formatter.Dim("Build a course first; only generated plans can be exported."))
	}
	format := "markdown"
	if len(args) > 0 {
		format = strings.ToLower(args[0])
	}
	switch format {
	case "markdown", "md":
		return output(formatter.PlanMarkdown(course.Plan))
	case "json":
		data, err := formatter.PlanJSON(course.Plan)
		if err != nil {
			return output(formatter.StyleRed.Render(err.Error()))
		}
		return output(string(data))
	default:
		return output(formatter.StyleRed.Render(fmt.Sprintf("unknown export format %q", format)))
	}
}

func (c *commandBar) runHelp([]string) tea.Cmd {
	rows := make([][]string, 0, len(barCommands))
	for _, bc := range barCommands {
		usage := bc.usage
		if usage == "" {
			usage = bc.name
		}
		rows = append(rows, []string{usage, bc.help})
	}
	return output(formatter.RenderTable([]string{"COMMAND", "DESCRIPTION"}, rows))
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	parts := strings.Fields(text)
	if len(parts) == 0 {
		c.input.SetSuggestions(nil)
		return
	}
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		names := make([]string, 0, len(barCommands))
		for _, bc := range barCommands {
			names = append(names, bc.name)
		}
		c.input.SetSuggestions(filterSuggestions(names, parts[0]))
		return
	}

	prefix := ""
	if len(parts) == 2 && !trailingSpace {
		prefix = parts[1]
	} else if len(parts) > 1 {
		c.input.SetSuggestions(nil)
		return
	}

	var candidates []string
	switch strings.ToLower(parts[0]) {
	case "go":
		candidates = c.goTargets()
	case "export":
		candidates = []string{"markdown", "json"}
	}
	// textinput matches suggestions against the whole value.
	full := make([]string, 0, len(candidates))
	for _, s := range filterSuggestions(candidates, prefix) {
		full = append(full, parts[0]+" "+s)
	}
	c.input.SetSuggestions(full)
}

func (c *commandBar) goTargets() []string {
	var out []string
	for _, v := range nav.Views() {
		out = append(out, string(v), v.BasePath())
	}
	if courses := c.state.App.Courses; courses != nil {
		for _, course := range append(courses.Generated(), courses.Enrolled()...) {
			out = append(out, "/course/"+course.ID)
		}
	}
	sort.Strings(out)
	return out
}

// filterSuggestions returns the candidates that start with prefix,
// case-insensitively.
func filterSuggestions(candidates []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	seen := make(map[string]bool, len(candidates))
	for _, s := range candidates {
		if seen[s] {
			continue
		}
		seen[s] = true
		if strings.HasPrefix(strings.ToLower(s), prefix) {
			out = append(out, s)
		}
	}
	return out
}
