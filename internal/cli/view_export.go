package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/fixtures"
	"github.com/alexanderramin/learnpath/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

type exportFormat string

const (
	exportMarkdown exportFormat = "markdown"
	exportJSON     exportFormat = "json"
)

// newExportView previews the selected course's plan in an export format
// and shows its share link.
func newExportView(s *SharedState) View {
	format := exportMarkdown
	render := func() string {
		return renderExport(s, format)
	}
	return newPageView(s, nav.ViewExportShare, render,
		shortcut("m", "markdown", func() tea.Cmd {
			format = exportMarkdown
			return nil
		}),
		shortcut("j", "json", func() tea.Cmd {
			format = exportJSON
			return nil
		}),
		shortcut("o", "outline", func() tea.Cmd { return navigateTo(nav.ViewCourseOutline) }),
	)
}

func renderExport(s *SharedState, format exportFormat) string {
	c := s.Nav.SelectedCourse()
	if c == nil {
		return formatter.Dim("No course selected. Open a course to export or share it.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", formatter.StyleHeader.Render(c.Title))
	b.WriteString(formatter.Header("Share"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n\n", formatter.StyleBlue.Render(fixtures.ShareURL(s.App.Config.ShareBaseURL, c.ID)))

	b.WriteString(formatter.Header("Export"))
	b.WriteString("\n")
	if c.Plan == nil {
		b.WriteString(formatter.Dim("Only courses built with the course builder can be exported."))
		b.WriteString("\n")
		return b.String()
	}

	for _, f := range []exportFormat{exportMarkdown, exportJSON} {
		label := string(f)
		if f == format {
			label = formatter.StyleYellowBold.Render("[" + label + "]")
		} else {
			label = formatter.Dim(" " + label + " ")
		}
		b.WriteString(label + " ")
	}
	b.WriteString("\n\n")

	switch format {
	case exportJSON:
		data, err := formatter.PlanJSON(c.Plan)
		if err != nil {
			b.WriteString(formatter.StyleRed.Render(err.Error()))
			break
		}
		b.Write(data)
	default:
		b.WriteString(formatter.PlanMarkdown(c.Plan))
	}
	b.WriteString("\n")
	return b.String()
}
