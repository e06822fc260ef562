package planner

import (
	"strings"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
)

// skillPlaceholder is replaced with the request's skill name in tier titles.
const skillPlaceholder = "{skill}"

// TierTemplate is one entry in the fixed module catalog.
type TierTemplate struct {
	Tier     domain.Tier
	Title    string // may contain {skill}
	Duration domain.HourRange
	Lessons  []domain.Lesson
}

func lesson(title string, kind domain.LessonKind, d time.Duration) domain.Lesson {
	return domain.Lesson{Title: title, Kind: kind, Duration: d}
}

var catalog = []TierTemplate{
	{
		Tier:     domain.TierIntroduction,
		Title:    "Introduction to {skill}",
		Duration: domain.HourRange{Min: 2, Max: 3},
		Lessons: []domain.Lesson{
			lesson("Course Overview and Expectations", domain.LessonVideo, 15*time.Minute),
			lesson("Setting Up Your Environment", domain.LessonReading, 30*time.Minute),
			lesson("First Steps and Basic Concepts", domain.LessonVideo, 45*time.Minute),
			lesson("Practice Exercise: Getting Started", domain.LessonExercise, time.Hour),
		},
	},
	{
		Tier:     domain.TierFundamentals,
		Title:    "{skill} Fundamentals",
		Duration: domain.HourRange{Min: 8, Max: 10},
		Lessons: []domain.Lesson{
			lesson("Core Principles and Theory", domain.LessonVideo, time.Hour),
			lesson("Essential Terminology", domain.LessonReading, 45*time.Minute),
			lesson("Hands-on Practice Session", domain.LessonExercise, 2*time.Hour),
			lesson("Building Your First Project", domain.LessonProject, 4*time.Hour),
			lesson("Review and Assessment", domain.LessonExercise, 90*time.Minute),
		},
	},
	{
		Tier:     domain.TierIntermediate,
		Title:    "Intermediate {skill} Techniques",
		Duration: domain.HourRange{Min: 12, Max: 15},
		Lessons: []domain.Lesson{
			lesson("Advanced Concepts Introduction", domain.LessonVideo, 90*time.Minute),
			lesson("Best Practices and Patterns", domain.LessonReading, time.Hour),
			lesson("Practical Applications", domain.LessonVideo, 2*time.Hour),
			lesson("Complex Exercise Set", domain.LessonExercise, 3*time.Hour),
			lesson("Mid-Level Project", domain.LessonProject, 6*time.Hour),
		},
	},
	{
		Tier:     domain.TierAdvanced,
		Title:    "Advanced {skill} Applications",
		Duration: domain.HourRange{Min: 15, Max: 18},
		Lessons: []domain.Lesson{
			lesson("Professional Techniques", domain.LessonVideo, 2*time.Hour),
			lesson("Industry Standards and Tools", domain.LessonReading, 90*time.Minute),
			lesson("Advanced Problem Solving", domain.LessonExercise, 4*time.Hour),
			lesson("Comprehensive Project", domain.LessonProject, 8*time.Hour),
			lesson("Code Review and Optimization", domain.LessonVideo, 2*time.Hour),
		},
	},
	{
		Tier:     domain.TierMastery,
		Title:    "{skill} Mastery and Specialization",
		Duration: domain.HourRange{Min: 20},
		Lessons: []domain.Lesson{
			lesson("Expert-Level Concepts", domain.LessonVideo, 150*time.Minute),
			lesson("Cutting-Edge Techniques", domain.LessonReading, 2*time.Hour),
			lesson("Real-World Case Studies", domain.LessonVideo, 3*time.Hour),
			lesson("Capstone Project", domain.LessonProject, 12*time.Hour),
			lesson("Final Assessment and Certification", domain.LessonExercise, 2*time.Hour),
		},
	},
}

// MaxModules is the size of the tier catalog and the cap on module count.
var MaxModules = len(catalog)

// Catalog returns a deep copy of the tier catalog in order.
func Catalog() []TierTemplate {
	out := make([]TierTemplate, len(catalog))
	for i, t := range catalog {
		out[i] = t
		out[i].Lessons = append([]domain.Lesson(nil), t.Lessons...)
	}
	return out
}

// instantiate builds the module for tier template t at 1-based position seq.
func (t TierTemplate) instantiate(seq int, skill string) domain.Module {
	return domain.Module{
		Sequence: seq,
		Tier:     t.Tier,
		Title:    strings.ReplaceAll(t.Title, skillPlaceholder, skill),
		Duration: t.Duration,
		Lessons:  append([]domain.Lesson(nil), t.Lessons...),
	}
}
