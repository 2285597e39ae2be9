package logging

import "io"

var logger Logger

// SetLogger replaces the package logger.
func SetLogger(l Logger) {
	logger = l
}

// SetNewLogger installs a logger writing to w at the given level.
func SetNewLogger(w io.Writer, level StatusLevel) {
	logger = NewLogger(w, level)
}

func GetLogger() Logger {
	if logger == nil {
		panic("logging: logger not set")
	}
	return logger
}
