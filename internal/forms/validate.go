package forms

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
)

const (
	MinPasswordLength  = 8
	MaxSkillNameLength = 80
)

// ValidateRequired rejects blank input.
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func ValidateSkillName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("enter the skill you want to learn")
	}
	if n := len([]rune(s)); n > MaxSkillNameLength {
		return fmt.Errorf("skill name is too long (%d > %d characters)", n, MaxSkillNameLength)
	}
	return nil
}

// ValidateWeeklyHours accepts a whole number of hours within the builder's
// range.
func ValidateWeeklyHours(s string) error {
	_, err := ParseWeeklyHours(s)
	return err
}

// ParseWeeklyHours converts a weekly hours entry, applying ValidateWeeklyHours' rules.
func ParseWeeklyHours(s string) (int, error) {
	h, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("weekly hours must be a whole number")
	}
	if h < domain.MinWeeklyHours || h > domain.MaxWeeklyHours {
		return 0, fmt.Errorf("weekly hours must be between %d and %d", domain.MinWeeklyHours, domain.MaxWeeklyHours)
	}
	return h, nil
}

// ValidateEmail accepts a bare address such as "ada@example.com".
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("enter your email")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || !strings.Contains(s[strings.LastIndex(s, "@")+1:], ".") {
		return fmt.Errorf("%q is not a valid email address", s)
	}
	return nil
}

func ValidatePassword(s string) error {
	if n := len([]rune(s)); n < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

func ValidatePasswordMatch(password, confirm string) error {
	if password != confirm {
		return errors.New("passwords do not match")
	}
	return nil
}

// ValidateLevels requires two known levels with the target above the
// current one.
func ValidateLevels(current, target string) error {
	c, err := domain.ParseLevel(current)
	if err != nil {
		return fmt.Errorf("current level: %w", err)
	}
	t, err := domain.ParseLevel(target)
	if err != nil {
		return fmt.Errorf("target level: %w", err)
	}
	switch {
	case c == t:
		return errors.New("target level must differ from current level")
	case t.Index() < c.Index():
		return fmt.Errorf("target level %s is below current level %s", t.Label(), c.Label())
	}
	return nil
}

// ValidateTerms requires the terms of service checkbox.
func ValidateTerms(accepted bool) error {
	if !accepted {
		return errors.New("you must accept the terms of service")
	}
	return nil
}
