// Package log is a thin structured-logging wrapper the CLI uses; the core
// spdxexpr and registry packages are pure and never log. logrus is
// configured here and then wrapped behind logr, so call sites depend on
// the logr.Logger interface rather than logrus directly.
package log

import (
	"strings"

	"github.com/bombsimon/logrusr/v2"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

// Logger exposes structured logging via
// https://pkg.go.dev/github.com/go-logr/logr.
type Logger struct {
	*logr.Logger
}

// New creates a Logger at the given level, formatting as JSON to stderr.
func New(level Level) *Logger {
	logrusLog := logrus.New()
	logrusLog.SetLevel(parseLogrusLevel(level))
	logrusLog.SetFormatter(&logrus.JSONFormatter{})
	logrLogger := logrusr.New(logrusLog)
	return &Logger{&logrLogger}
}

// Level is a string log level, so it can be taken directly from a CLI flag.
type Level string

const (
	DefaultLevel     = InfoLevel
	TraceLevel Level = "trace"
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

func (l Level) String() string { return string(l) }

// ParseLevel maps a flag value to a Level, defaulting to InfoLevel on an
// unrecognized string rather than failing CLI startup over a typo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "trace":
		return TraceLevel
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	}
	return DefaultLevel
}

func parseLogrusLevel(lvl Level) logrus.Level {
	l, err := logrus.ParseLevel(lvl.String())
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}
