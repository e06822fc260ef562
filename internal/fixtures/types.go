package fixtures

import "github.com/alexanderramin/learnpath/internal/domain"

// Fixtures is the mock content shown by every view that does not render a
// generated plan.
type Fixtures struct {
	User           User          `json:"user"`
	Landing        Landing       `json:"landing"`
	DashboardStats []Stat        `json:"dashboard_stats"`
	Courses        []CourseEntry `json:"courses"`
	Lesson         Lesson        `json:"lesson"`
	Quiz           Quiz          `json:"quiz"`
	Assignment     Assignment    `json:"assignment"`
	Progress       Progress      `json:"progress"`
	Certificates   []Certificate `json:"certificates"`

	courses map[string]*domain.Course
}

type User struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	JoinDate         string `json:"join_date"`
	CoursesCompleted int    `json:"courses_completed"`
	Certificates     int    `json:"certificates"`
	TimeSpent        string `json:"time_spent"`
}

// Initials returns up to two upper-case initials for an avatar.
func (u User) Initials() string {
	var out []rune
	start := true
	for _, r := range u.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start && len(out) < 2 {
			out = append(out, r)
		}
		start = false
	}
	return string(out)
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type Landing struct {
	Headline     string        `json:"headline"`
	Features     []Feature     `json:"features"`
	Stats        []Stat        `json:"stats"`
	Testimonials []Testimonial `json:"testimonials"`
}

// CourseEntry is an enrolled course as stored in the fixture document.
type CourseEntry struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Level      string        `json:"level"`
	Duration   string        `json:"duration"`
	Progress   int           `json:"progress"`
	NextLesson string        `json:"next_lesson"`
	Modules    []ModuleEntry `json:"modules"`
}

type ModuleEntry struct {
	Title     string   `json:"title"`
	Duration  string   `json:"duration"`
	Completed bool     `json:"completed"`
	Lessons   []string `json:"lessons"`
}

func (e CourseEntry) course() *domain.Course {
	c := &domain.Course{
		ID:         e.ID,
		Title:      e.Title,
		Level:      e.Level,
		Duration:   e.Duration,
		Progress:   e.Progress,
		NextLesson: e.NextLesson,
	}
	for _, m := range e.Modules {
		c.Modules = append(c.Modules, domain.CourseModule{
			Title:     m.Title,
			Duration:  m.Duration,
			Completed: m.Completed,
			Lessons:   append([]string(nil), m.Lessons...),
		})
	}
	return c
}

type Lesson struct {
	Title       string            `json:"title"`
	Kind        domain.LessonKind `json:"kind"`
	Duration    string            `json:"duration"`
	Description string            `json:"description"`
	Content     string            `json:"content"`
	VideoURL    string            `json:"video_url"`
}

type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

type Quiz struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Questions   []Question `json:"questions"`
}

// Score returns the percentage of correct answers, rounded to the nearest
// integer. answers[i] is the chosen option for question i; a missing or
// negative answer counts as wrong.
func (q Quiz) Score(answers []int) int {
	total := len(q.Questions)
	if total == 0 {
		return 0
	}
	correct := 0
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] == question.Correct {
			correct++
		}
	}
	// round-half-up of correct*100/total
	return (correct*200 + total) / (2 * total)
}

// QuizPassingScore is the lowest percentage that passes a quiz.
const QuizPassingScore = 70

func Passed(score int) bool { return score >= QuizPassingScore }

type Attachment struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

type Assignment struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	DueDate      string       `json:"due_date"`
	Points       int          `json:"points"`
	Instructions string       `json:"instructions"`
	Attachments  []Attachment `json:"attachments"`
}

type CourseProgress struct {
	Title            string `json:"title"`
	Progress         int    `json:"progress"`
	TimeSpent        string `json:"time_spent"`
	LastActivity     string `json:"last_activity"`
	ModulesCompleted int    `json:"modules_completed"`
	TotalModules     int    `json:"total_modules"`
}

type Achievement struct {
	Name   string `json:"name"`
	Earned bool   `json:"earned"`
}

type Progress struct {
	Overall        int              `json:"overall"`
	TimeSpent      string           `json:"time_spent"`
	CurrentStreak  int              `json:"current_streak"`
	Courses        []CourseProgress `json:"courses"`
	Achievements   []Achievement    `json:"achievements"`
	WeeklyActivity []int            `json:"weekly_activity"`
}

// CertificateVerified marks a certificate that has been issued.
const CertificateVerified = "verified"

type Certificate struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	IssueDate      string   `json:"issue_date"`
	CompletionDate string   `json:"completion_date"`
	Duration       string   `json:"duration"`
	Grade          string   `json:"grade"`
	Status         string   `json:"status"`
	Instructor     string   `json:"instructor"`
	Skills         []string `json:"skills"`
}

func (c Certificate) Verified() bool { return c.Status == CertificateVerified }
