package formatter

import (
	"testing"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/fixtures"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixtures(t *testing.T) *fixtures.Fixtures {
	t.Helper()
	f, err := fixtures.Load()
	require.NoError(t, err)
	return f
}

func TestFormatLanding(t *testing.T) {
	out := stripANSI(FormatLanding(loadFixtures(t).Landing))
	assert.Contains(t, out, "50K+")
	assert.Contains(t, out, "Flexible Scheduling")
	assert.Contains(t, out, "★★★★★ Sarah Johnson")
}

func TestFormatDashboard(t *testing.T) {
	f := loadFixtures(t)
	out := stripANSI(FormatDashboard(f.User, f.DashboardStats, f.EnrolledCourses(), 1))

	assert.Contains(t, out, "Welcome back, John!")
	assert.Contains(t, out, "Current Streak")
	assert.Contains(t, out, "  Web Development Fundamentals")
	assert.Contains(t, out, "▸ Data Science Essentials")
	assert.Contains(t, out, "Next: JavaScript Arrays")

	empty := stripANSI(FormatDashboard(fixtures.User{}, nil, nil, -1))
	assert.Contains(t, empty, "Welcome back, learner!")
	assert.Contains(t, empty, "No courses yet")
}

func TestFormatCourseOutline(t *testing.T) {
	f := loadFixtures(t)

	assert.Contains(t, stripANSI(FormatCourseOutline(nil)), "No course selected")

	web, _ := f.CourseByID("web-development-fundamentals")
	out := stripANSI(FormatCourseOutline(web))
	assert.Contains(t, out, "Web Development Fundamentals")
	assert.Contains(t, out, "✔ HTML Basics")
	assert.Contains(t, out, "CSS Project")
	assert.Contains(t, out, " 65%")

	ds, _ := f.CourseByID("data-science-essentials")
	assert.Contains(t, stripANSI(FormatCourseOutline(ds)), "not available yet")

	generated := domain.CourseFromPlan(samplePlan(t))
	assert.Contains(t, stripANSI(FormatCourseOutline(generated)), "Introduction to Web Development")
}

func TestFormatLessonAndAssignment(t *testing.T) {
	f := loadFixtures(t)

	lesson := stripANSI(FormatLesson(f.Lesson, false))
	assert.Contains(t, lesson, "CSS Selectors and Properties")
	assert.Contains(t, lesson, "video · 25 min")
	assert.Contains(t, lesson, "mark this lesson complete")
	assert.Contains(t, stripANSI(FormatLesson(f.Lesson, true)), "Lesson completed")

	a := stripANSI(FormatAssignment(f.Assignment, "", false))
	assert.Contains(t, a, "Build a Responsive Layout")
	assert.Contains(t, a, "Due: 2024-12-31")
	assert.Contains(t, a, "design-mockup.jpg 2.4 MB")
	assert.NotContains(t, a, "Submitted")

	done := stripANSI(FormatAssignment(f.Assignment, "https://github.com/me/layout", true))
	assert.Contains(t, done, "✔ Submitted")
	assert.Contains(t, done, "https://github.com/me/layout")
}

func TestFormatProfileAndProgress(t *testing.T) {
	f := loadFixtures(t)

	profile := stripANSI(FormatProfile(f.User))
	assert.Contains(t, profile, "(JD)")
	assert.Contains(t, profile, "john.doe@example.com")
	assert.Contains(t, profile, "Member since January 2024")

	progress := stripANSI(FormatProgress(f.Progress))
	assert.Contains(t, progress, "65%")
	assert.Contains(t, progress, "7 days")
	assert.Contains(t, progress, "3/5 modules")
	assert.Contains(t, progress, "40 hours this week")
	assert.Contains(t, progress, "★ First Lesson")
	assert.Contains(t, progress, "☆ Course Completer")
}

func TestFormatCertificates(t *testing.T) {
	f := loadFixtures(t)

	list := stripANSI(FormatCertificates(f.Certificates, 0))
	assert.Contains(t, list, "2 earned · 1 in progress")
	assert.Contains(t, list, "▸ Web Development Fundamentals")
	assert.Contains(t, list, "◌ in progress")

	cert := stripANSI(FormatCertificate(f.Certificates[0], f.User.Name))
	assert.Contains(t, cert, "CERTIFICATE OF COMPLETION")
	assert.Contains(t, cert, "John Doe")
	assert.Contains(t, cert, "LP-2024-WD-001")
	assert.Contains(t, cert, "Dr. Sarah Johnson")
}

func TestFormatViewsAndRoute(t *testing.T) {
	out := stripANSI(FormatViews())
	for _, v := range nav.Views() {
		assert.Contains(t, out, string(v))
	}
	assert.Contains(t, out, "/course/:id/lesson")

	route := stripANSI(FormatRoute("/course/go/lesson", nav.Resolve("/course/go/lesson")))
	assert.Contains(t, route, "/course/go/lesson → lesson")
	assert.Contains(t, route, "course: go")
	assert.Contains(t, route, "canonical: /course/go/lesson")
}
