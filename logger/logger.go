package logger

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the process-wide logger used by the group package.
func Logger() log.Logger {
	return logger
}

// SetLogger replaces the process-wide logger. Defaults to log.Discard().
func SetLogger(l log.Logger) {
	logger = l
}
