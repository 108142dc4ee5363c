package core

import (
	"io"
	"log"
	"os"

	"github.com/julien-sobczak/emotion-dashboard/pkg/resync"
)

var (
	// Lazy-load and ensure a single instance
	loggerOnce      resync.Once
	loggerSingleton *Logger
)

type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

func CurrentLogger() *Logger {
	loggerOnce.Do(func() {
		loggerSingleton = NewLogger()
	})
	return loggerSingleton
}

// ResetLogger forgets the current logger. Used by tests.
func ResetLogger() {
	loggerSingleton = nil
	loggerOnce.Reset()
}

type Logger struct {
	verbose VerboseLevel
	out     *log.Logger
}

func NewLogger() *Logger {
	return &Logger{
		verbose: VerboseOff,
		out:     log.New(os.Stderr, "", log.LstdFlags),
	}
}

// SetVerboseLevel overrides the default verbose level
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.verbose = level
	return l
}

// VerboseLevel returns the current verbose level.
func (l *Logger) VerboseLevel() VerboseLevel {
	return l.verbose
}

// SetOutput redirects the logs.
// The terminal is owned by Bubble Tea while the dashboard runs, so logs must go elsewhere.
func (l *Logger) SetOutput(w io.Writer) *Logger {
	l.out.SetOutput(w)
	return l
}

func (l *Logger) Fatal(v ...any) {
	l.out.Fatalln(v...)
}
func (l *Logger) Fatalf(format string, v ...any) {
	l.out.Fatalf(format, v...)
}

func (l *Logger) Warn(v ...any) {
	l.out.Println(v...)
}
func (l *Logger) Warnf(format string, v ...any) {
	l.out.Printf(format, v...)
}

func (l *Logger) Info(v ...any) {
	if l.verbose >= VerboseInfo {
		l.out.Println(v...)
	}
}
func (l *Logger) Infof(format string, v ...any) {
	if l.verbose >= VerboseInfo {
		l.out.Printf(format, v...)
	}
}

func (l *Logger) Debug(v ...any) {
	if l.verbose >= VerboseDebug {
		l.out.Println(v...)
	}
}
func (l *Logger) Debugf(format string, v ...any) {
	if l.verbose >= VerboseDebug {
		l.out.Printf(format, v...)
	}
}

func (l *Logger) Trace(v ...any) {
	if l.verbose >= VerboseTrace {
		l.out.Println(v...)
	}
}
func (l *Logger) Tracef(format string, v ...any) {
	if l.verbose >= VerboseTrace {
		l.out.Printf(format, v...)
	}
}
