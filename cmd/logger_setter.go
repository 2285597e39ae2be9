package cmd

import "github.com/InternatManhole/trains/internal/logging"

// SetLogger sets the package logger. This is primarily a test helper.
func SetLogger(l logging.Logger) {
	logging.SetLogger(l)
}

func GetLogger() logging.Logger {
	return logging.GetLogger()
}
