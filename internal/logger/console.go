// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger prints leveled, timestamped status lines for the CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	levelDebug int = iota
	levelInfo
	levelSuccess
	levelWarn
	levelError
)

var levelNames = map[string]int{
	"debug":   levelDebug,
	"info":    levelInfo,
	"success": levelSuccess,
	"warn":    levelWarn,
	"error":   levelError,
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// Level names are coloured when the writer is a terminal.
type ConsoleLogger struct {
	writer   io.Writer
	minLevel int
	mu       sync.Mutex
	color    bool
	now      func() time.Time
}

// New returns a logger writing to w. level is one of debug, info, success,
// warn, error; anything else means info. A nil writer discards output.
func New(w io.Writer, level string) *ConsoleLogger {
	if w == nil {
		w = io.Discard
	}
	return &ConsoleLogger{
		writer:   w,
		minLevel: ParseLevel(level),
		color:    isTerminal(w),
		now:      time.Now,
	}
}

// ParseLevel maps a level name to its numeric value, defaulting to info.
func ParseLevel(level string) int {
	if n, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]; ok {
		return n
	}
	return levelInfo
}

// isTerminal reports whether w is a TTY that should receive colour codes.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *ConsoleLogger) Debugf(format string, args ...any)   { l.log(levelDebug, format, args...) }
func (l *ConsoleLogger) Infof(format string, args ...any)    { l.log(levelInfo, format, args...) }
func (l *ConsoleLogger) Successf(format string, args ...any) { l.log(levelSuccess, format, args...) }
func (l *ConsoleLogger) Warnf(format string, args ...any)    { l.log(levelWarn, format, args...) }
func (l *ConsoleLogger) Errorf(format string, args ...any)   { l.log(levelError, format, args...) }

func (l *ConsoleLogger) log(level int, format string, args ...any) {
	if level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "[%s] [%s] %s\n", ts, l.label(level), msg)
}

func (l *ConsoleLogger) label(level int) string {
	var (
		name string
		attr color.Attribute
	)
	switch level {
	case levelDebug:
		name, attr = "DEBUG", color.FgCyan
	case levelSuccess:
		name, attr = "OK", color.FgGreen
	case levelWarn:
		name, attr = "WARN", color.FgYellow
	case levelError:
		name, attr = "ERROR", color.FgRed
	default:
		name, attr = "INFO", color.FgBlue
	}
	if !l.color {
		return name
	}
	return color.New(attr).Sprint(name)
}

// Writer returns an io.Writer that logs each written line at level. It lets
// packages that report through an io.Writer feed the console logger.
func (l *ConsoleLogger) Writer(level string) io.Writer {
	return &lineWriter{logger: l, level: ParseLevel(level)}
}

type lineWriter struct {
	logger *ConsoleLogger
	level  int
}

func (w *lineWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		w.logger.log(w.level, "%s", line)
	}
	return len(p), nil
}
