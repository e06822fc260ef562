package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/forms"
	"github.com/alexanderramin/learnpath/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func newLoginView(s *SharedState) View {
	in := &forms.Login{}
	return newFormView(s, nav.ViewLogin,
		"Welcome back. Log in to continue learning.",
		func() *huh.Form { return wizardLogin(in) },
		func(*formView) (tea.Cmd, error) {
			if err := in.Validate(); err != nil {
				return nil, err
			}
			return navigateTo(nav.ViewDashboard), nil
		},
		formLink{key: "ctrl+r", desc: "forgot password", view: nav.ViewPasswordReset},
		formLink{key: "ctrl+n", desc: "sign up", view: nav.ViewSignup},
	)
}

func newSignupView(s *SharedState) View {
	in := &forms.Signup{}
	return newFormView(s, nav.ViewSignup,
		"Create your account and start building courses.",
		func() *huh.Form { return wizardSignup(in) },
		func(*formView) (tea.Cmd, error) {
			if err := in.Validate(); err != nil {
				return nil, err
			}
			s.User.Name = strings.TrimSpace(in.Name)
			s.User.Email = strings.TrimSpace(in.Email)
			return navigateTo(nav.ViewDashboard), nil
		},
		formLink{key: "ctrl+l", desc: "log in", view: nav.ViewLogin},
	)
}

func newPasswordResetView(s *SharedState) View {
	in := &forms.PasswordReset{}
	return newFormView(s, nav.ViewPasswordReset,
		"Forgot your password? Enter your email address.",
		func() *huh.Form { return wizardPasswordReset(in) },
		func(v *formView) (tea.Cmd, error) {
			if err := in.Validate(); err != nil {
				return nil, err
			}
			v.showNotice(fmt.Sprintf("Check your email.\n\nWe sent a reset link to %s.", strings.TrimSpace(in.Email)), nav.ViewLogin)
			return nil, nil
		},
		formLink{key: "ctrl+l", desc: "back to log in", view: nav.ViewLogin},
	)
}

// newCourseBuilderView collects a plan request, builds the course and opens
// its outline.
func newCourseBuilderView(s *SharedState) View {
	in := forms.NewCourseBuilderInput(s.App.Config.DefaultWeeklyHours)
	return newFormView(s, nav.ViewCourseBuilder,
		"Tell us what you want to learn and we'll build a personalized path.",
		func() *huh.Form { return wizardCourseBuilder(&in) },
		func(*formView) (tea.Cmd, error) {
			req, err := in.Request()
			if err != nil {
				return nil, err
			}
			course, err := s.App.Plans.BuildCourse(context.Background(), req)
			if err != nil {
				return nil, err
			}
			return selectCourse(course), nil
		},
	)
}
