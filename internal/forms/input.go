package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
)

// CourseBuilderInput holds the course builder's raw field values.
type CourseBuilderInput struct {
	Skill        string
	WeeklyHours  string
	CurrentLevel string
	TargetLevel  string
}

// NewCourseBuilderInput returns an input prefilled with the builder
// defaults.
func NewCourseBuilderInput(defaultHours int) CourseBuilderInput {
	if defaultHours < domain.MinWeeklyHours || defaultHours > domain.MaxWeeklyHours {
		defaultHours = domain.DefaultWeeklyHours
	}
	return CourseBuilderInput{
		WeeklyHours:  fmt.Sprint(defaultHours),
		CurrentLevel: string(domain.LevelBeginner),
		TargetLevel:  string(domain.LevelIntermediate),
	}
}

// Request validates every field and converts the input into a plan
// request. All field errors are reported together.
func (in CourseBuilderInput) Request() (domain.CoursePlanRequest, error) {
	var errs []error
	if err := ValidateSkillName(in.Skill); err != nil {
		errs = append(errs, err)
	}
	hours, err := ParseWeeklyHours(in.WeeklyHours)
	if err != nil {
		errs = append(errs, err)
	}
	if err := ValidateLevels(in.CurrentLevel, in.TargetLevel); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return domain.CoursePlanRequest{}, errors.Join(errs...)
	}

	current, _ := domain.ParseLevel(in.CurrentLevel)
	target, _ := domain.ParseLevel(in.TargetLevel)
	return domain.CoursePlanRequest{
		SkillName:    strings.TrimSpace(in.Skill),
		WeeklyHours:  hours,
		CurrentLevel: current,
		TargetLevel:  target,
	}, nil
}

type Login struct {
	Email    string
	Password string
}

func (l Login) Validate() error {
	if err := ValidateEmail(l.Email); err != nil {
		return err
	}
	if err := ValidateRequired(l.Password); err != nil {
		return fmt.Errorf("password: %w", err)
	}
	return nil
}

type Signup struct {
	Name        string
	Email       string
	Password    string
	Confirm     string
	AcceptTerms bool
}

// Validate applies the signup rules: a name, a valid email, a strong enough
// password entered twice and accepted terms.
func (s Signup) Validate() error {
	if err := ValidateRequired(s.Name); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if err := ValidateEmail(s.Email); err != nil {
		return err
	}
	if err := ValidatePassword(s.Password); err != nil {
		return err
	}
	if err := ValidatePasswordMatch(s.Password, s.Confirm); err != nil {
		return err
	}
	return ValidateTerms(s.AcceptTerms)
}

type PasswordReset struct {
	Email string
}

func (p PasswordReset) Validate() error {
	return ValidateEmail(p.Email)
}
