package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	f, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "John Doe", f.User.Name)
	assert.Equal(t, "JD", f.User.Initials())
	assert.Len(t, f.DashboardStats, 4)
	assert.Len(t, f.Landing.Features, 6)
	assert.Len(t, f.Courses, 2)
	assert.Len(t, f.Quiz.Questions, 3)
	assert.Equal(t, 100, f.Assignment.Points)
	assert.Len(t, f.Assignment.Attachments, 2)
	assert.Equal(t, []int{5, 7, 3, 8, 6, 4, 7}, f.Progress.WeeklyActivity)
	require.Len(t, f.Certificates, 3)
	assert.True(t, f.Certificates[0].Verified())
	assert.False(t, f.Certificates[2].Verified())
	assert.Equal(t, domain.LessonVideo, f.Lesson.Kind)
}

func TestCourseByID(t *testing.T) {
	f, err := Load()
	require.NoError(t, err)

	c, ok := f.CourseByID("web-development-fundamentals")
	require.True(t, ok)
	assert.Equal(t, "Web Development Fundamentals", c.Title)
	assert.Equal(t, 65, c.Progress)
	require.Len(t, c.Modules, 3)
	assert.True(t, c.Modules[0].Completed)
	assert.Equal(t, []string{"JavaScript Basics", "Functions and Events", "DOM Manipulation"}, c.Modules[2].Lessons)

	again, _ := f.CourseByID("web-development-fundamentals")
	assert.Same(t, c, again)

	_, ok = f.CourseByID("missing")
	assert.False(t, ok)

	enrolled := f.EnrolledCourses()
	require.Len(t, enrolled, 2)
	assert.Same(t, c, enrolled[0])
	assert.Equal(t, "data-science-essentials", enrolled[1].ID)
}

func TestQuizScore(t *testing.T) {
	f, err := Load()
	require.NoError(t, err)
	q := f.Quiz

	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{1, 1, 2}, 100},
		{"two of three", []int{1, 1, 0}, 67},
		{"one of three", []int{1, 0, 0}, 33},
		{"none", []int{0, 0, 0}, 0},
		{"unanswered", nil, 0},
		{"partial answers", []int{1}, 33},
		{"skipped marked negative", []int{-1, 1, 2}, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, q.Score(tt.answers))
		})
	}

	assert.Equal(t, 0, Quiz{}.Score([]int{1}))

	eight := Quiz{Questions: make([]Question, 8)}
	assert.Equal(t, 13, eight.Score([]int{0}), "12.5 rounds up")
}

func TestPassed(t *testing.T) {
	assert.True(t, Passed(QuizPassingScore))
	assert.True(t, Passed(100))
	assert.False(t, Passed(67))
}

func TestParse_Errors(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		_, err := Parse([]byte("{"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON")
	})

	t.Run("missing sections", func(t *testing.T) {
		_, err := Parse([]byte(`{"user": {"name": "A", "email": "a@b.c"}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("progress out of range", func(t *testing.T) {
		data := mutate(t, func(doc map[string]any) {
			doc["progress"].(map[string]any)["overall"] = 140
		})
		_, err := Parse(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("correct option out of range", func(t *testing.T) {
		data := mutate(t, func(doc map[string]any) {
			qs := doc["quiz"].(map[string]any)["questions"].([]any)
			qs[0].(map[string]any)["correct"] = 9
		})
		_, err := Parse(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("duplicate course", func(t *testing.T) {
		data := mutate(t, func(doc map[string]any) {
			cs := doc["courses"].([]any)
			doc["courses"] = append(cs, cs[0])
		})
		_, err := Parse(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate course id")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.json")
	data := mutate(t, func(doc map[string]any) {
		doc["user"].(map[string]any)["name"] = "Ada Lovelace"
	})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", f.User.Name)
	assert.Equal(t, "AL", f.User.Initials())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading fixtures")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{}`), 0o644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestShareURL(t *testing.T) {
	assert.Equal(t, "https://learnpath.ai/courses/go", ShareURL("https://learnpath.ai", "go"))
	assert.Equal(t, "https://learnpath.ai/courses/go", ShareURL("https://learnpath.ai/", "go"))
}
