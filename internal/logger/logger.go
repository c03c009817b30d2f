package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	kunlog "github.com/yaoapp/kun/log"

	"github.com/codifire/designpatterns/config"
)

// Console receives the colored development echo. Defaults to stderr so
// command output on stdout stays clean.
var Console io.Writer = color.Error

var (
	gray   = color.New(color.FgHiBlack)
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// Logger tags every line with its component name and forwards to kun/log.
//
// Dev mode  → colored echo on Console (at or above PATTERNS_LOG_LEVEL) + kun/log.
// Prod mode → kun/log only.
type Logger struct {
	tag string
}

// New creates a Logger tagged with the given component name
// (e.g. "server", "subscription", "scenario").
func New(tag string) *Logger {
	return &Logger{tag: tag}
}

func (l *Logger) prefix() string {
	return fmt.Sprintf("[observer:%s]", l.tag)
}

func (l *Logger) emit(level string, c *color.Color, glyph string, sink func(string, ...interface{}), format string, args []interface{}) {
	msg := fmt.Sprintf(format, args...)
	if config.IsDevelopment() && config.LevelEnabled(level) {
		c.Fprintf(Console, "  %s %s %s\n", glyph, l.prefix(), msg)
	}
	sink("%s %s", l.prefix(), msg)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.emit("trace", gray, "→", kunlog.Trace, format, args)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit("debug", gray, "•", kunlog.Debug, format, args)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.emit("info", cyan, "ℹ", kunlog.Info, format, args)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit("warn", yellow, "⚠", kunlog.Warn, format, args)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.emit("error", red, "✗", kunlog.Error, format, args)
}
