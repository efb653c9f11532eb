// Package logger provides the leveled status logger used by the huffpack
// command.
package logger

import (
	"io"
	"log"
)

// Logger prints status messages.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger writing to w with the standard timestamp prefix.
func New(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

// Discard returns a Logger that prints nothing.
func Discard() Logger {
	return &stdLogger{l: log.New(io.Discard, "", 0)}
}

func (s *stdLogger) Infof(format string, v ...interface{})  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...interface{}) { s.l.Printf("[ERROR] "+format, v...) }
