package nav

import "fmt"

// ViewName identifies one full-screen page of the application.
type ViewName string

const (
	ViewLanding       ViewName = "landing"
	ViewLogin         ViewName = "login"
	ViewSignup        ViewName = "signup"
	ViewPasswordReset ViewName = "password-reset"
	ViewDashboard     ViewName = "dashboard"
	ViewCourseBuilder ViewName = "course-builder"
	ViewCourseOutline ViewName = "course-outline"
	ViewLesson        ViewName = "lesson"
	ViewQuiz          ViewName = "quiz"
	ViewAssignments   ViewName = "assignments"
	ViewExportShare   ViewName = "export-share"
	ViewProfile       ViewName = "profile"
	ViewProgress      ViewName = "progress"
	ViewCertificates  ViewName = "certificates"
	ViewCertificate   ViewName = "certificate"
)

type viewInfo struct {
	name  ViewName
	path  string
	title string
}

// views is the closed set of pages in display order.
var views = []viewInfo{
	{ViewLanding, "/", "Home"},
	{ViewLogin, "/login", "Log In"},
	{ViewSignup, "/signup", "Sign Up"},
	{ViewPasswordReset, "/password-reset", "Reset Password"},
	{ViewDashboard, "/dashboard", "Dashboard"},
	{ViewCourseBuilder, "/builder", "Course Builder"},
	{ViewCourseOutline, "/course", "Course"},
	{ViewLesson, "/lesson", "Lesson"},
	{ViewQuiz, "/quiz", "Quiz"},
	{ViewAssignments, "/assignments", "Assignments"},
	{ViewExportShare, "/export-share", "Export & Share"},
	{ViewProfile, "/profile", "Profile"},
	{ViewProgress, "/progress", "Progress"},
	{ViewCertificates, "/certificates", "Certificates"},
	{ViewCertificate, "/certificate", "Certificate"},
}

// Views returns every view name in display order.
func Views() []ViewName {
	out := make([]ViewName, len(views))
	for i, v := range views {
		out[i] = v.name
	}
	return out
}

func lookup(name ViewName) (viewInfo, bool) {
	for _, v := range views {
		if v.name == name {
			return v, true
		}
	}
	return viewInfo{}, false
}

// Valid reports whether v belongs to the closed view set.
func (v ViewName) Valid() bool {
	_, ok := lookup(v)
	return ok
}

// Title is the human-readable page name used in breadcrumbs.
func (v ViewName) Title() string {
	if info, ok := lookup(v); ok {
		return info.title
	}
	return string(v)
}

// BasePath is the canonical URL path of the view without a course segment.
func (v ViewName) BasePath() string {
	if info, ok := lookup(v); ok {
		return info.path
	}
	return "/"
}

// ParseView converts a view name into a ViewName.
func ParseView(s string) (ViewName, error) {
	v := ViewName(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown view %q", s)
	}
	return v, nil
}
