// Package logging provides the leveled, key/value logger used by guess.
// Game output goes to stdout; everything written here goes to stderr so a
// piped transcript only ever contains the game's fixed vocabulary.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
)

// Level represents a log level.
type Level int

const (
	// LevelDebug traces every guess and the drawn secret.
	LevelDebug Level = iota
	// LevelInfo reports recoverable player mistakes such as unparseable input.
	LevelInfo
	// LevelWarn is for configuration fallbacks and other oddities.
	LevelWarn
	// LevelError is for failures that end the session.
	LevelError
)

// String returns the upper-case name printed in front of each entry.
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
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelWarn, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger writes leveled entries with context fields.
// Child loggers created by With share the parent's level and output.
type Logger struct {
	sink   *sink
	fields map[string]any
}

type sink struct {
	mu       sync.RWMutex
	minLevel Level
	output   *log.Logger
}

var defaultLogger = New()

// New creates a Logger at LevelWarn writing to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger at LevelWarn writing to w without timestamps.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		sink: &sink{
			minLevel: LevelWarn,
			output:   log.New(w, "", 0),
		},
		fields: map[string]any{},
	}
}

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger
}

// SetLevel sets the minimum level for this logger and all loggers derived from it.
func (l *Logger) SetLevel(level Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.minLevel = level
}

// SetOutput replaces the destination for this logger and all loggers derived from it.
func (l *Logger) SetOutput(output *log.Logger) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.output = output
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level Level) bool {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	return level >= l.sink.minLevel
}

// With returns a child Logger carrying one more context field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a child Logger carrying the given context fields.
// The receiver is not modified.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{sink: l.sink, fields: merged}
}

func (l *Logger) log(level Level, msg string, keyVals ...any) {
	if !l.Enabled(level) {
		return
	}

	all := make(map[string]any, len(l.fields)+len(keyVals)/2)
	for k, v := range l.fields {
		all[k] = v
	}
	for i := 0; i+1 < len(keyVals); i += 2 {
		key, ok := keyVals[i].(string)
		if !ok {
			key = fmt.Sprint(keyVals[i])
		}
		all[key] = keyVals[i+1]
	}

	var sb strings.Builder
	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(msg)

	if len(all) > 0 {
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(" |")
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%s", k, formatValue(all[k]))
		}
	}

	l.sink.mu.RLock()
	output := l.sink.output
	l.sink.mu.RUnlock()
	output.Print(sb.String())
}

// formatValue quotes strings containing whitespace and all error values.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" || strings.ContainsAny(val, " \t\r\n") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case error:
		return fmt.Sprintf("%q", val.Error())
	case fmt.Stringer:
		return formatValue(val.String())
	default:
		return fmt.Sprint(v)
	}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keyVals ...any) {
	l.log(LevelDebug, msg, keyVals...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, keyVals ...any) {
	l.log(LevelInfo, msg, keyVals...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keyVals ...any) {
	l.log(LevelWarn, msg, keyVals...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, keyVals ...any) {
	l.log(LevelError, msg, keyVals...)
}

// Package-level functions that use the default logger.

// SetLevel sets the minimum level of the default logger.
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetOutput sets the output of the default logger.
func SetOutput(output *log.Logger) {
	defaultLogger.SetOutput(output)
}

// With returns a child of the default logger with one context field.
func With(key string, value any) *Logger {
	return defaultLogger.With(key, value)
}

// Warn logs at warn level using the default logger.
func Warn(msg string, keyVals ...any) {
	defaultLogger.Warn(msg, keyVals...)
}

// Error logs at error level using the default logger.
func Error(msg string, keyVals ...any) {
	defaultLogger.Error(msg, keyVals...)
}
