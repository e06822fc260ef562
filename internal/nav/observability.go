package nav

import (
	"log/slog"
)

// Action names the kind of transition that produced an event.
type Action string

const (
	ActionNavigate     Action = "navigate"
	ActionSelectCourse Action = "select_course"
	ActionBack         Action = "back"
	ActionLogout       Action = "logout"
)

// TransitionEvent describes one completed transition.
type TransitionEvent struct {
	Action Action
	From   State
	To     State
	Path   string
}

// Observer is notified after every transition.
type Observer interface {
	OnTransition(event TransitionEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(TransitionEvent)

func (f ObserverFunc) OnTransition(event TransitionEvent) { f(event) }

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnTransition(TransitionEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver logs each transition at debug level.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) OnTransition(ev TransitionEvent) {
	attrs := []any{
		"action", string(ev.Action),
		"from", string(ev.From.View),
		"to", string(ev.To.View),
		"path", ev.Path,
	}
	if ev.To.Course != nil {
		attrs = append(attrs, "course", ev.To.Course.ID)
	}
	o.logger.Debug("navigation", attrs...)
}
