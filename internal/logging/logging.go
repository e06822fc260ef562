package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	File       string
	Level      slog.Level
	MaxSizeMB  int
	MaxBackups int
}

// Logger is a slog.Logger with the file it writes to.
type Logger struct {
	*slog.Logger
	SessionID string
	closer    io.Closer
}

// New returns a logger writing to a rotated file, or a discarding logger
// when no file is configured. Every record carries the session id.
func New(opts Options) *Logger {
	session := uuid.NewString()
	if opts.File == "" {
		return &Logger{
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
			SessionID: session,
		}
	}
	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	}
	l := newWithWriter(w, opts.Level, session)
	l.closer = w
	return l
}

func newWithWriter(w io.Writer, level slog.Level, session string) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(h).With("session", session),
		SessionID: session,
	}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
