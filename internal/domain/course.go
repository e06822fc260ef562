package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Course is the record a view can select: either an enrolled fixture course
// or a course built from a freshly generated plan.
type Course struct {
	ID         string
	Title      string
	Level      string
	Duration   string
	Progress   int
	NextLesson string
	Modules    []CourseModule

	// Plan is set only for courses produced by the course builder.
	Plan *CoursePlan
}

// CourseModule is a module summary for fixture courses, which have no
// generated plan.
type CourseModule struct {
	Title     string
	Duration  string
	Completed bool
	Lessons   []string
}

// CourseFromPlan wraps a generated plan as a selectable course.
func CourseFromPlan(p *CoursePlan) *Course {
	return &Course{
		ID:       CourseID(p.Request.SkillName),
		Title:    strings.TrimSpace(p.Request.SkillName),
		Level:    fmt.Sprintf("%s → %s", p.Request.CurrentLevel.Label(), p.Request.TargetLevel.Label()),
		Duration: fmt.Sprintf("%d hours", p.TotalHours),
		Plan:     p,
	}
}

// CourseID returns the URL identifier for a course built for skill. Names
// with nothing to slug, such as non-Latin scripts, get a stable
// "course-<hex>" ID derived from the trimmed name.
func CourseID(skill string) string {
	if id := Slug(skill); id != "" {
		return id
	}
	name := strings.TrimSpace(skill)
	sum := uuid.NewSHA1(uuid.NameSpaceURL, []byte("learnpath:"+name))
	return "course-" + strings.ReplaceAll(sum.String(), "-", "")[:12]
}

var slugReplacer = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
	"&", " and ", "@", " at ", "+", " plus ", "#", " sharp ",
)

// Slug turns free text into a lowercase, dash-separated ASCII identifier
// suitable for a URL path segment. "C# & .NET Basics" becomes
// "c-sharp-and-net-basics".
func Slug(s string) string {
	s = slugReplacer.Replace(strings.ToLower(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	var b strings.Builder
	dash := false
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
