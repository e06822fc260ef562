package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/fixtures"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func FormatLanding(l fixtures.Landing) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(l.Headline))
	b.WriteString("\n")
	b.WriteString(Dim("Tell us what you want to learn and how much time you have. We build the path."))
	b.WriteString("\n\n")

	labels := make([]string, len(l.Stats))
	values := make([]string, len(l.Stats))
	for i, s := range l.Stats {
		labels[i], values[i] = s.Label, s.Value
	}
	b.WriteString(RenderStats(labels, values))
	b.WriteString("\n\n")

	b.WriteString(Header("Features"))
	b.WriteString("\n")
	for _, f := range l.Features {
		fmt.Fprintf(&b, "%s %s\n  %s\n", StyleGreen.Render("●"), Bold(f.Title), Dim(f.Description))
	}

	if len(l.Testimonials) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("What learners say"))
		b.WriteString("\n")
		for _, t := range l.Testimonials {
			fmt.Fprintf(&b, "%s %s\n  “%s”\n  %s\n",
				StyleYellow.Render(strings.Repeat("★", t.Rating)), Bold(t.Name), t.Content, Dim(t.Role))
		}
	}
	return b.String()
}

// FormatDashboard renders the stats row and the enrolled course list.
// selected is the index of the highlighted course, or -1.
func FormatDashboard(user fixtures.User, stats []fixtures.Stat, courses []*domain.Course, selected int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", StyleHeader.Render("Welcome back, "+firstName(user.Name)+"!"),
		Dim("Continue your learning journey"))

	labels := make([]string, len(stats))
	values := make([]string, len(stats))
	for i, s := range stats {
		labels[i], values[i] = s.Label, s.Value
	}
	b.WriteString(RenderStats(labels, values))
	b.WriteString("\n\n")

	b.WriteString(Header("My Courses"))
	b.WriteString("\n")
	if len(courses) == 0 {
		b.WriteString(Dim("No courses yet. Press n to build one."))
		b.WriteString("\n")
	}
	for i, c := range courses {
		cursor := "  "
		title := Bold(c.Title)
		if i == selected {
			cursor = StyleYellowBold.Render("▸ ")
			title = StyleYellowBold.Render(c.Title)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", cursor, title, Dim(c.Level+" · "+c.Duration))
		fmt.Fprintf(&b, "  %s\n", RenderProgress(c.Progress, 20))
		if c.NextLesson != "" {
			fmt.Fprintf(&b, "  %s %s\n", Dim("Next:"), c.NextLesson)
		}
	}
	return b.String()
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return "learner"
}

// FormatCourseOutline renders a selected course: the generated plan when
// it has one, otherwise the fixture module list.
func FormatCourseOutline(c *domain.Course) string {
	if c == nil {
		return Dim("No course selected. Pick one from the dashboard or build a new one.")
	}
	if c.Plan != nil {
		return FormatPlan(c.Plan)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", StyleHeader.Render(c.Title), Dim(c.Level+" · "+c.Duration))
	fmt.Fprintf(&b, "%s\n\n", RenderProgress(c.Progress, 30))
	b.WriteString(Header("Course Content"))
	b.WriteString("\n")
	if len(c.Modules) == 0 {
		b.WriteString(Dim("The outline for this course is not available yet."))
		b.WriteString("\n")
		return b.String()
	}
	var items []TreeItem
	for _, m := range c.Modules {
		items = append(items, TreeItem{Title: m.Title, Done: m.Completed, Detail: m.Duration})
		for i, l := range m.Lessons {
			items = append(items, TreeItem{Title: l, Level: 1, IsLast: i == len(m.Lessons)-1, Done: m.Completed})
		}
	}
	b.WriteString(RenderTree(items))
	return b.String()
}

func FormatLesson(l fixtures.Lesson, completed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", KindIcon(l.Kind), StyleHeader.Render(l.Title))
	fmt.Fprintf(&b, "%s\n\n", Dim(string(l.Kind)+" · "+l.Duration))
	b.WriteString(l.Description)
	b.WriteString("\n\n")
	if l.VideoURL != "" {
		fmt.Fprintf(&b, "%s %s\n\n", Dim("Video:"), StyleBlue.Render(l.VideoURL))
	}
	b.WriteString(l.Content)
	b.WriteString("\n")
	if completed {
		b.WriteString(StyleGreen.Render("✔ Lesson completed"))
	} else {
		b.WriteString(Dim("Press c to mark this lesson complete."))
	}
	b.WriteString("\n")
	return b.String()
}

func FormatAssignment(a fixtures.Assignment, submission string, submitted bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", StyleHeader.Render(a.Title), Dim(a.Description))
	fmt.Fprintf(&b, "%s %s   %s %d\n\n", Dim("Due:"), a.DueDate, Dim("Points:"), a.Points)
	b.WriteString(a.Instructions)
	b.WriteString("\n")
	if len(a.Attachments) > 0 {
		b.WriteString(Header("Resources"))
		b.WriteString("\n")
		for _, att := range a.Attachments {
			fmt.Fprintf(&b, "  %s %s\n", att.Name, Dim(att.Size))
		}
		b.WriteString("\n")
	}
	if submitted {
		b.WriteString(StyleGreen.Render("✔ Submitted"))
		b.WriteString("\n")
		if submission != "" {
			b.WriteString(Dim(submission))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func FormatProfile(u fixtures.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StylePurple.Render("("+u.Initials()+")"), StyleHeader.Render(u.Name))
	fmt.Fprintf(&b, "%s\n%s\n\n", u.Email, Dim("Member since "+u.JoinDate))
	b.WriteString(RenderStats(
		[]string{"Courses Completed", "Certificates", "Time Spent"},
		[]string{fmt.Sprint(u.CoursesCompleted), fmt.Sprint(u.Certificates), u.TimeSpent},
	))
	b.WriteString("\n")
	return b.String()
}

func FormatProgress(p fixtures.Progress) string {
	var b strings.Builder
	b.WriteString(RenderStats(
		[]string{"Overall Progress", "Time Spent", "Current Streak"},
		[]string{fmt.Sprintf("%d%%", p.Overall), p.TimeSpent, Plural(p.CurrentStreak, "day")},
	))
	b.WriteString("\n\n")

	b.WriteString(Header("Course Progress"))
	b.WriteString("\n")
	for _, c := range p.Courses {
		fmt.Fprintf(&b, "%s\n  %s  %s\n  %s\n", Bold(c.Title), RenderProgress(c.Progress, 20),
			Dim(fmt.Sprintf("%d/%d modules", c.ModulesCompleted, c.TotalModules)),
			Dim(c.TimeSpent+" · last activity "+c.LastActivity))
	}

	b.WriteString("\n")
	b.WriteString(Header("Weekly Activity"))
	b.WriteString("\n")
	b.WriteString(RenderSparkline(p.WeeklyActivity))
	b.WriteString("\n")
	total := 0
	for i, h := range p.WeeklyActivity {
		total += h
		if i < len(weekdays) {
			fmt.Fprintf(&b, "%s %2dh ", Dim(weekdays[i]), h)
		}
	}
	fmt.Fprintf(&b, "\n%s\n\n", Dim(fmt.Sprintf("%d hours this week", total)))

	b.WriteString(Header("Achievements"))
	b.WriteString("\n")
	for _, a := range p.Achievements {
		if a.Earned {
			fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("★"), a.Name)
		} else {
			fmt.Fprintf(&b, "%s %s\n", Dim("☆"), Dim(a.Name))
		}
	}
	return b.String()
}

// FormatCertificates lists certificates with the highlighted index.
func FormatCertificates(certs []fixtures.Certificate, selected int) string {
	verified := 0
	for _, c := range certs {
		if c.Verified() {
			verified++
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Dim(fmt.Sprintf("%d earned · %d in progress", verified, len(certs)-verified)))
	for i, c := range certs {
		cursor := "  "
		if i == selected {
			cursor = StyleYellowBold.Render("▸ ")
		}
		status := StyleGreen.Render("✔ verified")
		if !c.Verified() {
			status = StyleYellow.Render("◌ in progress")
		}
		fmt.Fprintf(&b, "%s%s  %s\n", cursor, Bold(c.Title), status)
		fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("%s · %s · grade %s · %s", c.ID, c.IssueDate, c.Grade, c.Duration)))
		fmt.Fprintf(&b, "  %s\n", StyleBlue.Render(strings.Join(c.Skills, ", ")))
	}
	return b.String()
}

// FormatCertificate renders a single certificate as a framed award.
func FormatCertificate(c fixtures.Certificate, recipient string) string {
	var b strings.Builder
	b.WriteString(Dim("This certifies that"))
	b.WriteString("\n\n")
	b.WriteString(StyleHeader.Render(recipient))
	b.WriteString("\n\n")
	b.WriteString(Dim("has successfully completed"))
	b.WriteString("\n\n")
	b.WriteString(Bold(c.Title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		Dim("Completed"), c.CompletionDate, Dim("Duration"), c.Duration, Dim("Grade"), c.Grade)
	if c.Instructor != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Instructor"), c.Instructor)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Skills"), strings.Join(c.Skills, ", "))
	fmt.Fprintf(&b, "%s %s", Dim("Certificate ID"), c.ID)
	return RenderBox("Certificate of Completion", b.String())
}
