package nav

import (
	"net/url"
	"strings"
)

// Route is a resolved URL path.
type Route struct {
	View     ViewName
	CourseID string // set for /course/:id and /course/:id/lesson
}

// Resolve maps a URL path to a route. Query strings, fragments and trailing
// slashes are ignored. Unknown paths resolve to the landing view.
func Resolve(path string) Route {
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	}
	path = "/" + strings.Trim(path, "/")

	for _, v := range views {
		if v.path == path {
			return Route{View: v.name}
		}
	}

	segs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if segs[0] == "course" {
		switch {
		case len(segs) == 2 && segs[1] != "":
			return Route{View: ViewCourseOutline, CourseID: segs[1]}
		case len(segs) == 3 && segs[1] != "" && segs[2] == "lesson":
			return Route{View: ViewLesson, CourseID: segs[1]}
		}
	}
	return Route{View: ViewLanding}
}

// Path renders the canonical URL path for r.
func (r Route) Path() string {
	if r.CourseID != "" {
		id := url.PathEscape(r.CourseID)
		switch r.View {
		case ViewCourseOutline:
			return "/course/" + id
		case ViewLesson:
			return "/course/" + id + "/lesson"
		}
	}
	return r.View.BasePath()
}
