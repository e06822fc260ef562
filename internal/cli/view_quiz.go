package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/fixtures"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// quizView steps through the fixture quiz one question at a time and shows
// the score once every question is answered.
type quizView struct {
	state    *SharedState
	quiz     fixtures.Quiz
	current  int
	cursor   int
	answers  []int // -1 until answered
	finished bool
}

func newQuizView(s *SharedState) View {
	v := &quizView{state: s}
	if s.App.Fixtures != nil {
		v.quiz = s.App.Fixtures.Quiz
	}
	v.reset()
	return v
}

func (v *quizView) reset() {
	v.answers = make([]int, len(v.quiz.Questions))
	for i := range v.answers {
		v.answers[i] = -1
	}
	v.current, v.cursor, v.finished = 0, 0, false
}

func (v *quizView) ID() nav.ViewName { return nav.ViewQuiz }
func (v *quizView) Title() string    { return nav.ViewQuiz.Title() }

func (v *quizView) ShortHelp() []key.Binding {
	if v.finished {
		return []key.Binding{binding("r", "retry"), binding("enter", "continue")}
	}
	return []key.Binding{
		binding("1-4", "answer"),
		binding("enter", "next"),
		binding("left", "previous"),
	}
}

func (v *quizView) Init() tea.Cmd { return nil }

func (v *quizView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	if v.finished {
		switch keyMsg.String() {
		case "r":
			v.reset()
		case "enter":
			return v, navigateTo(nav.ViewCourseOutline)
		}
		return v, nil
	}
	if len(v.quiz.Questions) == 0 {
		return v, nil
	}

	options := v.quiz.Questions[v.current].Options
	switch k := keyMsg.String(); k {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(options)-1 {
			v.cursor++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if n := int(k[0] - '1'); n < len(options) {
			v.cursor = n
			v.answers[v.current] = n
		}
	case " ":
		v.answers[v.current] = v.cursor
	case "enter":
		if v.answers[v.current] < 0 {
			v.answers[v.current] = v.cursor
		}
		v.advance()
	case "left", "h":
		if v.current > 0 {
			v.current--
			v.cursor = max(v.answers[v.current], 0)
		}
	}
	return v, nil
}

func (v *quizView) advance() {
	if v.current == len(v.quiz.Questions)-1 {
		v.finished = true
		return
	}
	v.current++
	v.cursor = max(v.answers[v.current], 0)
}

// Score is the percentage score of the current answers.
func (v *quizView) Score() int {
	return v.quiz.Score(v.answers)
}

func (v *quizView) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", formatter.StyleHeader.Render(v.quiz.Title),
		formatter.Dim(v.quiz.Description+" · "+v.quiz.Duration))

	switch {
	case len(v.quiz.Questions) == 0:
		b.WriteString(formatter.Dim("This quiz has no questions yet."))
	case v.finished:
		v.renderResults(&b)
	default:
		v.renderQuestion(&b)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (v *quizView) renderQuestion(b *strings.Builder) {
	total := len(v.quiz.Questions)
	fmt.Fprintf(b, "%s  %s\n\n", formatter.Dim(fmt.Sprintf("Question %d of %d", v.current+1, total)),
		formatter.RenderCompactBar(v.current*100/total, 20, true))

	q := v.quiz.Questions[v.current]
	b.WriteString(formatter.Bold(q.Question))
	b.WriteString("\n\n")
	for i, opt := range q.Options {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleYellowBold.Render("▸ ")
		}
		mark := formatter.Dim("○")
		if v.answers[v.current] == i {
			mark = formatter.StyleGreen.Render("●")
		}
		fmt.Fprintf(b, "%s%s %d. %s\n", cursor, mark, i+1, opt)
	}
}

func (v *quizView) renderResults(b *strings.Builder) {
	score := v.Score()
	if fixtures.Passed(score) {
		b.WriteString(formatter.StyleGreen.Render("Quiz passed!"))
		b.WriteString("\n")
		b.WriteString(formatter.Dim("Congratulations! You've passed the quiz."))
	} else {
		b.WriteString(formatter.StyleRed.Render("Quiz failed"))
		b.WriteString("\n")
		b.WriteString(formatter.Dim(fmt.Sprintf("You need %d%% to pass. Review the lesson and try again.", fixtures.QuizPassingScore)))
	}
	fmt.Fprintf(b, "\n\n%s %s\n\n", formatter.Bold(fmt.Sprintf("%d%%", score)), formatter.RenderProgress(score, 20))

	for i, q := range v.quiz.Questions {
		if v.answers[i] == q.Correct {
			fmt.Fprintf(b, "%s %s\n", formatter.StyleGreen.Render("✔"), q.Question)
			continue
		}
		fmt.Fprintf(b, "%s %s\n  %s %s\n", formatter.StyleRed.Render("✗"), q.Question,
			formatter.Dim("answer:"), q.Options[q.Correct])
	}
}
