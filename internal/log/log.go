// Package log is a small leveled logger over the standard library log
// package. A *Logger satisfies moodboard.Logger.
package log

import (
	"io"
	"log"
	"strings"
)

// Level is a message severity; messages below the logger's level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name. Unknown names fall back to INFO.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

type Logger struct {
	logger *log.Logger
	level  Level
}

// New writes lines to out as "[moodboard] LEVEL: message".
func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "[moodboard] ", 0),
		level:  level,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

func (l *Logger) Debugf(format string, v ...any) {
	l.printf(LevelDebug, format, v...)
}

func (l *Logger) Infof(format string, v ...any) {
	l.printf(LevelInfo, format, v...)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.printf(LevelWarn, format, v...)
}

func (l *Logger) Errorf(format string, v ...any) {
	l.printf(LevelError, format, v...)
}

func (l *Logger) printf(at Level, format string, v ...any) {
	if at < l.level {
		return
	}
	l.logger.Printf(at.String()+": "+format, v...)
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}
