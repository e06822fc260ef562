package cli

import (
	"testing"

	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Auth forms
// =============================================================================

func TestTUI_LoginFlow(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('l')
	require.Equal(t, nav.ViewLogin, d.ActiveViewID())

	d.Type("ada@example.com")
	d.PressEnter()
	d.Type("hunter22")
	d.PressEnter()

	assert.Equal(t, nav.ViewDashboard, d.ActiveViewID())
	d.AssertViewContains("Welcome back, John!")
}

func TestTUI_LoginRejectsBadEmail(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('l')

	d.Type("not-an-email")
	d.PressEnter()

	assert.Equal(t, nav.ViewLogin, d.ActiveViewID(), "invalid email keeps the form open")
}

func TestTUI_LoginLinks(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('l')

	d.SendKey(ctrlKey('r'))
	assert.Equal(t, nav.ViewPasswordReset, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, nav.ViewLogin, d.ActiveViewID())

	d.SendKey(ctrlKey('n'))
	assert.Equal(t, nav.ViewSignup, d.ActiveViewID())
}

func TestTUI_SignupSetsSessionUser(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('s')
	require.Equal(t, nav.ViewSignup, d.ActiveViewID())

	d.Type("Grace Hopper")
	d.PressEnter()
	d.Type("grace@example.com")
	d.PressEnter()
	d.Type("cobol1959")
	d.PressEnter()
	d.Type("cobol1959")
	d.PressEnter()
	d.PressKey('y') // accepting the terms submits the last group

	assert.Equal(t, nav.ViewDashboard, d.ActiveViewID())
	assert.Equal(t, "Grace Hopper", d.State().User.Name)
	d.AssertViewContains("Welcome back, Grace!")

	// Logging out restores the fixture profile.
	d.PressKey('o')
	assert.Equal(t, nav.ViewLanding, d.ActiveViewID())
	assert.NotEqual(t, "Grace Hopper", d.State().User.Name)
}

func TestTUI_PasswordResetNotice(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Go("/password-reset")

	d.Type("ada@example.com")
	d.PressEnter()

	assert.Equal(t, nav.ViewPasswordReset, d.ActiveViewID())
	d.AssertViewContains("Check your email", "ada@example.com")

	d.PressEnter()
	assert.Equal(t, nav.ViewLogin, d.ActiveViewID())
}

// =============================================================================
// Course builder → outline → export
// =============================================================================

func TestTUI_CourseBuilderBuildsAndSelectsCourse(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('g')
	require.Equal(t, nav.ViewCourseBuilder, d.ActiveViewID())

	d.Type("Machine Learning")
	d.PressEnter() // skill
	d.PressEnter() // current level: beginner
	d.PressEnter() // target level: intermediate
	d.PressEnter() // hours: 10

	require.Equal(t, nav.ViewCourseOutline, d.ActiveViewID())
	course := d.SelectedCourse()
	require.NotNil(t, course)
	assert.Equal(t, "machine-learning", course.ID)
	require.NotNil(t, course.Plan)
	assert.Len(t, course.Plan.Modules, 4)
	assert.Equal(t, 8, course.Plan.EstimatedWeeks)
	assert.Equal(t, "/course/machine-learning", d.Path())
	d.AssertViewContains("Machine Learning", "8 weeks", "Balanced learning")

	// The generated course is addressable and listed first on the dashboard.
	got, ok := app.Courses.CourseByID("machine-learning")
	require.True(t, ok)
	assert.Same(t, course, got)

	d.Go("/dashboard")
	d.PressEnter()
	assert.Equal(t, nav.ViewCourseOutline, d.ActiveViewID())
	assert.Same(t, course, d.SelectedCourse())
}

func TestTUI_CourseBuilderRejectsEqualLevels(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('g')

	d.Type("Chess")
	d.PressEnter()
	d.PressEnter()
	// Move the target from intermediate up to beginner.
	d.PressUp()
	d.PressUp()
	d.PressEnter()

	assert.Equal(t, nav.ViewCourseBuilder, d.ActiveViewID())
	assert.Nil(t, d.SelectedCourse())
}

func TestTUI_ExportGeneratedCourse(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('g')
	d.Type("Go")
	for range 4 {
		d.PressEnter()
	}
	require.Equal(t, nav.ViewCourseOutline, d.ActiveViewID())

	d.PressKey('e')
	require.Equal(t, nav.ViewExportShare, d.ActiveViewID())
	d.AssertViewContains("https://learnpath.ai/courses/go", "# Go", "[markdown]")

	d.PressKey('j')
	d.AssertViewContains(`"skill": "Go"`, "[json]")

	// The selection survives the trip to the export page.
	d.PressKey('o')
	assert.Equal(t, nav.ViewCourseOutline, d.ActiveViewID())
	assert.Equal(t, "go", d.SelectedCourse().ID)
}

func TestTUI_ExportFixtureCourse(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Go("/course/web-development-fundamentals")
	d.PressKey('e')

	d.AssertViewContains("https://learnpath.ai/courses/web-development-fundamentals",
		"Only courses built with the course builder")
}

// =============================================================================
// Dashboard and course pages
// =============================================================================

func TestTUI_DashboardSelectsCourse(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('d')

	d.PressDown()
	d.PressEnter()

	require.Equal(t, nav.ViewCourseOutline, d.ActiveViewID())
	assert.Equal(t, "data-science-essentials", d.SelectedCourse().ID)
	d.AssertViewContains("not available yet")
}

func TestTUI_LessonCompletion(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Go("/course/web-development-fundamentals/lesson")
	require.Equal(t, nav.ViewLesson, d.ActiveViewID())
	require.NotNil(t, d.SelectedCourse())

	d.AssertViewContains("CSS Selectors", "Press c to mark this lesson complete")
	d.PressKey('c')
	d.AssertViewContains("Lesson completed")
}

func TestTUI_QuizScoring(t *testing.T) {
	tests := []struct {
		name    string
		answers []rune
		want    string
		passed  bool
	}{
		{"all correct", []rune{'2', '2', '3'}, "100%", true},
		{"two of three", []rune{'2', '2', '1'}, "67%", false},
		{"none", []rune{'1', '1', '1'}, "0%", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTestDriver(t, testApp(t))
			d.Go("/quiz")
			for _, a := range tt.answers {
				d.PressKey(a)
				d.PressEnter()
			}
			d.AssertViewContains(tt.want)
			if tt.passed {
				d.AssertViewContains("Quiz passed!")
			} else {
				d.AssertViewContains("Quiz failed")
			}

			d.PressKey('r')
			d.AssertViewContains("Question 1 of 3")
		})
	}
}

func TestTUI_AssignmentSubmission(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Go("/assignments")

	d.PressKey('w')
	d.Type("https://github.com/me/portfolio")
	assert.False(t, d.Quitting)
	d.SendKey(ctrlKey('s'))

	d.AssertViewContains("Submitted", "https://github.com/me/portfolio")
}

// =============================================================================
// Account pages
// =============================================================================

func TestTUI_ProfileEdit(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Go("/profile")

	d.PressKey('e')
	d.ClearInput(40)
	d.Type("Ada Lovelace")
	d.PressEnter()
	d.PressEnter()

	assert.Equal(t, "Ada Lovelace", d.State().User.Name)
	assert.True(t, d.OutputActive())
	d.PressEsc() // dismiss the confirmation
	d.AssertViewContains("Ada Lovelace", "(AL)")
}

func TestTUI_CertificateFlow(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Go("/progress")
	d.PressKey('c')
	require.Equal(t, nav.ViewCertificates, d.ActiveViewID())

	d.PressDown()
	d.PressEnter()
	require.Equal(t, nav.ViewCertificate, d.ActiveViewID())
	assert.Equal(t, 1, d.State().CertificateIndex)
	d.AssertViewContains("CERTIFICATE OF COMPLETION", d.State().User.Name)

	d.PressKey('l')
	assert.Equal(t, nav.ViewCertificates, d.ActiveViewID())
}
