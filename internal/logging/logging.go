package logging

import "log/slog"

type StatusLevel int

const (
	NoStatus StatusLevel = iota
	Verbose
	EvenMoreVerbose
)

// Logger reports progress of a command on stderr. Messages are printf-style.
type Logger interface {
	Error(format string, a ...any)
	Verbose(format string, a ...any)
	EvenMoreVerbose(format string, a ...any)
}

// slogLevel is the lowest slog level shown at the given status level.
func (l StatusLevel) slogLevel() slog.Level {
	switch {
	case l >= EvenMoreVerbose:
		return slog.LevelDebug
	case l == Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
