package tracelog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ErrEmptyScope is returned by Peek when no scope has been pushed.
var ErrEmptyScope = errors.New("tracelog: scope stack is empty")

// timeLayout is the timestamp format used inside the [ TIME ] prefix.
const timeLayout = "2006/01/02 15:04:05"

const (
	stackTraceBegin = "====== Stack Trace ======"
	stackTraceEnd   = "========================="
)

// severityColors maps each severity to its console color.
// The file sink always receives plain text.
var severityColors = map[Severity]*color.Color{
	FatalLevel: color.New(color.FgMagenta),
	ErrorLevel: color.New(color.FgRed),
	WarnLevel:  color.New(color.FgYellow),
	InfoLevel:  color.New(color.FgGreen),
	DebugLevel: color.New(color.FgCyan),
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Logger writes timestamped, leveled records to the console and an
// append-mode log file, and keeps a stack of named scopes that is dumped
// whenever something at ErrorLevel or worse is logged.
//
// A Logger is not safe for concurrent use; callers running it from more
// than one goroutine must serialize access themselves.
type Logger struct {
	threshold   Severity
	fileName    string
	initialized bool
	closed      bool
	scope       []string
	file        *os.File
	console     io.Writer
	colorize    bool
}

// New returns a Logger that writes to the console only, filtering at
// InfoLevel. Call Init to attach the file sink.
func New() *Logger {
	return &Logger{
		threshold: InfoLevel,
		console:   outStdout,
	}
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the shared process-wide Logger, creating it on first
// use. The initial threshold honors the TRACELOG_THRESHOLD environment
// variable when it names a valid severity.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
		defaultLogger.SetThreshold(thresholdFromEnv())
	})
	return defaultLogger
}

// thresholdFromEnv resolves the starting threshold for the shared logger.
func thresholdFromEnv() Severity {
	if env := os.Getenv("TRACELOG_THRESHOLD"); env != "" {
		if s, err := ParseSeverity(env); err == nil {
			return s
		}
	}
	return InfoLevel
}

// Init attaches the append-mode file sink at path and emits the
// "Log initialised" record. It returns true on the first call and false
// on every later one; the first initialization wins and repeats are
// no-ops, not errors.
//
// File I/O is best-effort: if the file cannot be opened, Init reports the
// problem on stderr and the logger keeps running console-only. Write
// errors on either sink are ignored.
func (l *Logger) Init(path string) bool {
	if l.initialized {
		return false
	}
	l.fileName = path
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(outStderr, "tracelog: failed to open log file %s: %v\n", path, err)
	} else {
		l.file = f
	}
	l.initialized = true
	l.Info("Log initialised")
	return true
}

// Write emits message followed by a newline to the console and, when the
// file sink is open, to the log file. No filtering, no prefix; this is
// the raw primitive underneath Log.
func (l *Logger) Write(message string) {
	_, _ = fmt.Fprintln(l.console, message)
	if l.file != nil {
		_, _ = fmt.Fprintln(l.file, message)
	}
}

// Log writes message with a [ TIME ] prefix when severity passes the
// threshold, and reports whether anything was written. Records at
// ErrorLevel or worse are followed by a dump of the scope stack,
// newest scope first, bracketed by delimiter lines.
func (l *Logger) Log(severity Severity, message string) bool {
	if !severity.AtLeast(l.threshold) {
		return false
	}
	line := "[ " + time.Now().Format(timeLayout) + " ] " + message
	if l.colorize {
		_, _ = fmt.Fprintln(l.console, severityColors[severity].Sprint(line))
		if l.file != nil {
			_, _ = fmt.Fprintln(l.file, line)
		}
	} else {
		l.Write(line)
	}
	if severity.AtLeast(ErrorLevel) {
		l.Write(stackTraceBegin)
		for i := len(l.scope) - 1; i >= 0; i-- {
			l.Write(l.scope[i])
		}
		l.Write(stackTraceEnd)
	}
	return true
}

// Fatal logs message at FatalLevel. Unlike the stdlib log package it does
// not terminate the process; it reports whether the record was written.
func (l *Logger) Fatal(message string) bool { return l.Log(FatalLevel, message) }

// Error logs message at ErrorLevel.
func (l *Logger) Error(message string) bool { return l.Log(ErrorLevel, message) }

// Warn logs message at WarnLevel.
func (l *Logger) Warn(message string) bool { return l.Log(WarnLevel, message) }

// Info logs message at InfoLevel.
func (l *Logger) Info(message string) bool { return l.Log(InfoLevel, message) }

// Debug logs message at DebugLevel.
func (l *Logger) Debug(message string) bool { return l.Log(DebugLevel, message) }

// Fatalf logs a FatalLevel message formatted with fmt.Sprintf.
func (l *Logger) Fatalf(format string, v ...any) bool {
	return l.Log(FatalLevel, fmt.Sprintf(format, v...))
}

// Errorf logs an ErrorLevel message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) bool {
	return l.Log(ErrorLevel, fmt.Sprintf(format, v...))
}

// Warnf logs a WarnLevel message formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) bool {
	return l.Log(WarnLevel, fmt.Sprintf(format, v...))
}

// Infof logs an InfoLevel message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) bool {
	return l.Log(InfoLevel, fmt.Sprintf(format, v...))
}

// Debugf logs a DebugLevel message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) bool {
	return l.Log(DebugLevel, fmt.Sprintf(format, v...))
}

// Push records entry into a named scope: it emits an INFO "BEGIN - name"
// record and puts name on top of the scope stack. Empty names are
// rejected and nothing happens.
func (l *Logger) Push(name string) bool {
	if name == "" {
		return false
	}
	l.Info("BEGIN - " + name)
	l.scope = append(l.scope, name)
	return true
}

// Pop removes and returns the top scope, emitting an INFO "END - name"
// record for it. Popping an empty stack returns "" and emits nothing.
func (l *Logger) Pop() string {
	if len(l.scope) == 0 {
		return ""
	}
	top := l.scope[len(l.scope)-1]
	l.scope = l.scope[:len(l.scope)-1]
	l.Info("END - " + top)
	return top
}

// Peek returns the top scope without removing it, or ErrEmptyScope when
// no scope has been pushed.
func (l *Logger) Peek() (string, error) {
	if len(l.scope) == 0 {
		return "", ErrEmptyScope
	}
	return l.scope[len(l.scope)-1], nil
}

// Depth returns the number of scopes currently on the stack.
func (l *Logger) Depth() int { return len(l.scope) }

// SetThreshold sets the minimum severity that will be written.
func (l *Logger) SetThreshold(s Severity) { l.threshold = s }

// Threshold returns the current filtering threshold.
func (l *Logger) Threshold() Severity { return l.threshold }

// SetColorize enables or disables colored console output. Colors never
// reach the file sink, and fatih/color suppresses them automatically when
// the console is not a terminal.
func (l *Logger) SetColorize(on bool) { l.colorize = on }

// FileName returns the path passed to Init, or "" before initialization.
func (l *Logger) FileName() string { return l.fileName }

// Close emits the "Log shutting down" record and closes the file sink.
// It runs at most once per initialized logger; calling it again, or on a
// logger that was never initialized, is a no-op. Call it via defer when
// the owning scope exits.
func (l *Logger) Close() error {
	if !l.initialized || l.closed {
		return nil
	}
	l.closed = true
	l.Info("Log shutting down")
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// --- Package-level functions operating on the shared Default logger ---

// Init initializes the shared logger's file sink.
func Init(path string) bool { return Default().Init(path) }

// Write emits a raw line through the shared logger.
func Write(message string) { Default().Write(message) }

// Log writes a leveled record through the shared logger.
func Log(severity Severity, message string) bool { return Default().Log(severity, message) }

// Fatal logs at FatalLevel through the shared logger.
func Fatal(message string) bool { return Default().Fatal(message) }

// Error logs at ErrorLevel through the shared logger.
func Error(message string) bool { return Default().Error(message) }

// Warn logs at WarnLevel through the shared logger.
func Warn(message string) bool { return Default().Warn(message) }

// Info logs at InfoLevel through the shared logger.
func Info(message string) bool { return Default().Info(message) }

// Debug logs at DebugLevel through the shared logger.
func Debug(message string) bool { return Default().Debug(message) }

// Fatalf logs a formatted FatalLevel message through the shared logger.
func Fatalf(format string, v ...any) bool { return Default().Fatalf(format, v...) }

// Errorf logs a formatted ErrorLevel message through the shared logger.
func Errorf(format string, v ...any) bool { return Default().Errorf(format, v...) }

// Warnf logs a formatted WarnLevel message through the shared logger.
func Warnf(format string, v ...any) bool { return Default().Warnf(format, v...) }

// Infof logs a formatted InfoLevel message through the shared logger.
func Infof(format string, v ...any) bool { return Default().Infof(format, v...) }

// Debugf logs a formatted DebugLevel message through the shared logger.
func Debugf(format string, v ...any) bool { return Default().Debugf(format, v...) }

// Push enters a named scope on the shared logger.
func Push(name string) bool { return Default().Push(name) }

// Pop leaves the innermost scope on the shared logger.
func Pop() string { return Default().Pop() }

// Peek returns the shared logger's innermost scope.
func Peek() (string, error) { return Default().Peek() }

// SetThreshold sets the shared logger's filtering threshold.
func SetThreshold(s Severity) { Default().SetThreshold(s) }

// Close shuts down the shared logger.
func Close() error { return Default().Close() }
