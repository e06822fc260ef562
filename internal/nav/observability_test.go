package nav

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver_WritesTransition(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := New(NewLogObserver(logger))

	n.SelectCourse(sampleCourse())

	out := buf.String()
	assert.Contains(t, out, "msg=navigation")
	assert.Contains(t, out, "action=select_course")
	assert.Contains(t, out, "to=course-outline")
	assert.Contains(t, out, "path=/course/web-dev")
	assert.Contains(t, out, "course=web-dev")
}

func TestNewLogObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopObserver{}, NewLogObserver(nil))
}
