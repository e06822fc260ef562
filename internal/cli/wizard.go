package cli

import (
	"fmt"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/forms"
	"github.com/alexanderramin/learnpath/internal/planner"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// learnpathHuhTheme returns a custom huh theme using the Gruvbox palette.
func learnpathHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(learnpathHuhTheme()).WithShowHelp(false)
}

// wizardLogin builds the login form bound to in.
func wizardLogin(in *forms.Login) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Validate(forms.ValidateEmail).
				Value(&in.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(forms.ValidateRequired).
				Value(&in.Password),
		),
	)
}

// wizardSignup builds the account creation form bound to in.
func wizardSignup(in *forms.Signup) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Validate(forms.ValidateRequired).
				Value(&in.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Validate(forms.ValidateEmail).
				Value(&in.Email),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				Description(fmt.Sprintf("At least %d characters", forms.MinPasswordLength)).
				EchoMode(huh.EchoModePassword).
				Validate(forms.ValidatePassword).
				Value(&in.Password),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					return forms.ValidatePasswordMatch(in.Password, s)
				}).
				Value(&in.Confirm),
			huh.NewConfirm().
				Title("I agree to the Terms of Service and Privacy Policy").
				Affirmative("Agree").
				Negative("Decline").
				Validate(forms.ValidateTerms).
				Value(&in.AcceptTerms),
		),
	)
}

// wizardPasswordReset asks for the address a reset link is sent to.
func wizardPasswordReset(in *forms.PasswordReset) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Description("We'll send you a link to reset your password.").
				Validate(forms.ValidateEmail).
				Value(&in.Email),
		),
	)
}

func levelOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Levels()))
	for _, l := range domain.Levels() {
		opts = append(opts, huh.NewOption(l.Label()+"  "+formatter.Dim(l.Description()), string(l)))
	}
	return opts
}

// wizardCourseBuilder builds the three-step course builder form: skill,
// levels, then the weekly time budget.
func wizardCourseBuilder(in *forms.CourseBuilderInput) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to learn?").
				Placeholder("e.g. Machine Learning, Spanish, Guitar").
				Validate(forms.ValidateSkillName).
				Value(&in.Skill),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Current level").
				Options(levelOptions()...).
				Value(&in.CurrentLevel),
			huh.NewSelect[string]().
				Title("Target level").
				Options(levelOptions()...).
				Validate(func(target string) error {
					return forms.ValidateLevels(in.CurrentLevel, target)
				}).
				Value(&in.TargetLevel),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hours per week").
				DescriptionFunc(func() string {
					return weeklyBudgetHint(in.WeeklyHours)
				}, &in.WeeklyHours).
				Validate(forms.ValidateWeeklyHours).
				Value(&in.WeeklyHours),
		),
	)
}

// weeklyBudgetHint describes the pace and up-front content estimate for a
// weekly hours entry, or the allowed range while the entry is invalid.
func weeklyBudgetHint(raw string) string {
	h, err := forms.ParseWeeklyHours(raw)
	if err != nil {
		return fmt.Sprintf("%d to %d hours", domain.MinWeeklyHours, domain.MaxWeeklyHours)
	}
	return fmt.Sprintf("%s · about %d hours of content", planner.Pace(h), planner.ContentHours(h))
}

// profileInput is the editable part of the user profile.
type profileInput struct {
	Name  string
	Email string
}

func wizardProfile(in *profileInput) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(forms.ValidateRequired).
				Value(&in.Name),
			huh.NewInput().
				Title("Email").
				Validate(forms.ValidateEmail).
				Value(&in.Email),
		),
	)
}
