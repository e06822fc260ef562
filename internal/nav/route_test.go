package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", Route{View: ViewLanding}},
		{"", Route{View: ViewLanding}},
		{"/login", Route{View: ViewLogin}},
		{"/builder", Route{View: ViewCourseBuilder}},
		{"/dashboard/", Route{View: ViewDashboard}},
		{"/quiz?attempt=2", Route{View: ViewQuiz}},
		{"/course", Route{View: ViewCourseOutline}},
		{"/course/web-dev", Route{View: ViewCourseOutline, CourseID: "web-dev"}},
		{"/course/web-dev/lesson", Route{View: ViewLesson, CourseID: "web-dev"}},
		{"/course/web-dev/quiz", Route{View: ViewLanding}},
		{"/nowhere", Route{View: ViewLanding}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.path))
		})
	}
}

func TestRoutePath_RoundTrips(t *testing.T) {
	for _, v := range Views() {
		r := Route{View: v}
		assert.Equal(t, r, Resolve(r.Path()), "view %s", v)
	}
	r := Route{View: ViewLesson, CourseID: "data-science"}
	assert.Equal(t, "/course/data-science/lesson", r.Path())
	assert.Equal(t, r, Resolve(r.Path()))
}

func TestRoutePath_CourseIgnoredOutsideCourseViews(t *testing.T) {
	assert.Equal(t, "/quiz", Route{View: ViewQuiz, CourseID: "x"}.Path())
}

func TestViews(t *testing.T) {
	all := Views()
	require.Len(t, all, 15)
	assert.Equal(t, ViewLanding, all[0])
	for _, v := range all {
		assert.True(t, v.Valid())
		assert.NotEmpty(t, v.Title())
	}
	assert.False(t, ViewName("bogus").Valid())
	assert.Equal(t, "bogus", ViewName("bogus").Title())
	assert.Equal(t, "/", ViewName("bogus").BasePath())
}

func TestParseView(t *testing.T) {
	v, err := ParseView("export-share")
	require.NoError(t, err)
	assert.Equal(t, ViewExportShare, v)

	_, err = ParseView("settings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings")
}
