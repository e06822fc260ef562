package cli

import (
	"github.com/alexanderramin/learnpath/internal/fixtures"
	"github.com/alexanderramin/learnpath/internal/nav"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App
	Nav *nav.Navigator

	// User is the session's copy of the fixture profile; profile edits
	// change it for the rest of the session only.
	User fixtures.User

	// CertificateIndex is the certificate the certificate view shows.
	CertificateIndex int

	// dirty is set by the navigator subscription and cleared once the
	// app model has rebuilt the active view.
	dirty bool

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	s := &SharedState{
		App: app,
		Nav: nav.New(nav.NewLogObserver(app.Logger)),
	}
	if app.Fixtures != nil {
		s.User = app.Fixtures.User
	}
	s.Nav.Subscribe(func(nav.State) { s.dirty = true })
	return s
}

// Certificate returns the certificate selected for the detail view.
func (s *SharedState) Certificate() (fixtures.Certificate, bool) {
	if s.App.Fixtures == nil || len(s.App.Fixtures.Certificates) == 0 {
		return fixtures.Certificate{}, false
	}
	certs := s.App.Fixtures.Certificates
	i := s.CertificateIndex
	if i < 0 || i >= len(certs) {
		i = 0
	}
	return certs[i], true
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
