// Package nav owns the application's navigation state: which view is shown
// and which course, if any, is selected.
//
// Every transition is an unconditional assignment. There are no guards and
// no transition can fail; unknown view names fall back to the landing view.
package nav

import "github.com/alexanderramin/learnpath/internal/domain"

// maxHistory bounds the back stack.
const maxHistory = 64

// State is a snapshot of the navigation state.
type State struct {
	View   ViewName
	Course *domain.Course
}

// Route returns the addressable route for s.
func (s State) Route() Route {
	r := Route{View: s.View}
	if s.Course != nil && (s.View == ViewCourseOutline || s.View == ViewLesson) {
		r.CourseID = s.Course.ID
	}
	return r
}

// CourseLookup finds a course by ID for path-based navigation.
type CourseLookup interface {
	CourseByID(id string) (*domain.Course, bool)
}

// Navigator is the single source of truth for the displayed view.
type Navigator struct {
	state     State
	history   []State
	observers []Observer
}

// New creates a Navigator on the landing view.
func New(observers ...Observer) *Navigator {
	n := &Navigator{state: State{View: ViewLanding}}
	for _, o := range observers {
		n.Observe(o)
	}
	return n
}

// Observe registers o to receive an event after every transition.
func (n *Navigator) Observe(o Observer) {
	if o != nil {
		n.observers = append(n.observers, o)
	}
}

// Subscribe registers fn to be called with the new state once per
// transition.
func (n *Navigator) Subscribe(fn func(State)) {
	if fn == nil {
		return
	}
	n.Observe(ObserverFunc(func(ev TransitionEvent) { fn(ev.To) }))
}

// Current returns the displayed view.
func (n *Navigator) Current() ViewName { return n.state.View }

// SelectedCourse returns the selected course or nil.
func (n *Navigator) SelectedCourse() *domain.Course { return n.state.Course }

// State returns a snapshot of the current state.
func (n *Navigator) State() State { return n.state }

// Path returns the URL path of the current location.
func (n *Navigator) Path() string { return n.state.Route().Path() }

// CanGoBack reports whether Back would change the state.
func (n *Navigator) CanGoBack() bool { return len(n.history) > 0 }

// NavigateTo shows view v, keeping the selected course.
func (n *Navigator) NavigateTo(v ViewName) {
	if !v.Valid() {
		v = ViewLanding
	}
	n.transition(ActionNavigate, State{View: v, Course: n.state.Course}, true)
}

// SelectCourse attaches c as the selected course and shows its outline.
func (n *Navigator) SelectCourse(c *domain.Course) {
	n.transition(ActionSelectCourse, State{View: ViewCourseOutline, Course: c}, true)
}

// NavigateToPath resolves path and shows the addressed view. A course
// segment is looked up through courses; an unknown course ID clears the
// selection.
func (n *Navigator) NavigateToPath(path string, courses CourseLookup) {
	r := Resolve(path)
	next := State{View: r.View, Course: n.state.Course}
	if r.CourseID != "" {
		next.Course = nil
		if courses != nil {
			if c, ok := courses.CourseByID(r.CourseID); ok {
				next.Course = c
			}
		}
	}
	n.transition(ActionNavigate, next, true)
}

// Back returns to the previous location. It reports false when there is no
// history.
func (n *Navigator) Back() bool {
	if len(n.history) == 0 {
		return false
	}
	last := len(n.history) - 1
	prev := n.history[last]
	n.history[last] = State{}
	n.history = n.history[:last]
	n.transition(ActionBack, prev, false)
	return true
}

// Logout returns to the landing view and clears the selected course and
// history.
func (n *Navigator) Logout() {
	n.history = nil
	n.transition(ActionLogout, State{View: ViewLanding}, false)
}

func (n *Navigator) GoToLanding()       { n.NavigateTo(ViewLanding) }
func (n *Navigator) GoToLogin()         { n.NavigateTo(ViewLogin) }
func (n *Navigator) GoToSignup()        { n.NavigateTo(ViewSignup) }
func (n *Navigator) GoToPasswordReset() { n.NavigateTo(ViewPasswordReset) }
func (n *Navigator) GoToDashboard()     { n.NavigateTo(ViewDashboard) }
func (n *Navigator) GoToCourseBuilder() { n.NavigateTo(ViewCourseBuilder) }
func (n *Navigator) GoToCourseOutline() { n.NavigateTo(ViewCourseOutline) }
func (n *Navigator) GoToLesson()        { n.NavigateTo(ViewLesson) }
func (n *Navigator) GoToQuiz()          { n.NavigateTo(ViewQuiz) }
func (n *Navigator) GoToAssignments()   { n.NavigateTo(ViewAssignments) }
func (n *Navigator) GoToExportShare()   { n.NavigateTo(ViewExportShare) }
func (n *Navigator) GoToProfile()       { n.NavigateTo(ViewProfile) }
func (n *Navigator) GoToProgress()      { n.NavigateTo(ViewProgress) }
func (n *Navigator) GoToCertificates()  { n.NavigateTo(ViewCertificates) }
func (n *Navigator) GoToCertificate()   { n.NavigateTo(ViewCertificate) }

func (n *Navigator) transition(action Action, next State, record bool) {
	from := n.state
	if record {
		if len(n.history) == maxHistory {
			copy(n.history, n.history[1:])
			n.history[maxHistory-1] = State{}
			n.history = n.history[:maxHistory-1]
		}
		n.history = append(n.history, from)
	}
	n.state = next

	ev := TransitionEvent{Action: action, From: from, To: next, Path: n.Path()}
	for _, o := range n.observers {
		o.OnTransition(ev)
	}
}
