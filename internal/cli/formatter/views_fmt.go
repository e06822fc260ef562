package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/nav"
)

// FormatViews lists every view with its canonical path, followed by the
// course-addressed paths.
func FormatViews() string {
	rows := make([][]string, 0, len(nav.Views())+2)
	for _, v := range nav.Views() {
		rows = append(rows, []string{string(v), v.BasePath(), v.Title()})
	}
	rows = append(rows,
		[]string{string(nav.ViewCourseOutline), "/course/:id", Dim("selects the course")},
		[]string{string(nav.ViewLesson), "/course/:id/lesson", Dim("selects the course")},
	)
	return RenderTable([]string{"VIEW", "PATH", "TITLE"}, rows)
}

// FormatRoute describes what a path resolves to.
func FormatRoute(path string, r nav.Route) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", Bold(path), Dim("→"), StyleGreen.Render(string(r.View)))
	if r.CourseID != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("course:"), r.CourseID)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("canonical:"), r.Path())
	return b.String()
}
