package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type slogLogger struct {
	l *slog.Logger
}

// NewDefaultLogger logs to stderr.
func NewDefaultLogger(level StatusLevel) Logger {
	return NewLogger(os.Stderr, level)
}

func NewLogger(w io.Writer, level StatusLevel) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.slogLevel()})
	return &slogLogger{l: slog.New(h)}
}

func (s *slogLogger) Error(format string, a ...any) {
	s.log(slog.LevelError, format, a...)
}

func (s *slogLogger) Verbose(format string, a ...any) {
	s.log(slog.LevelInfo, format, a...)
}

func (s *slogLogger) EvenMoreVerbose(format string, a ...any) {
	s.log(slog.LevelDebug, format, a...)
}

func (s *slogLogger) log(level slog.Level, format string, a ...any) {
	ctx := context.Background()
	if !s.l.Enabled(ctx, level) {
		return
	}
	s.l.Log(ctx, level, fmt.Sprintf(format, a...))
}
