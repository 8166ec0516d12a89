// Package logger provides a small structured logger with leveled output in
// JSON or text form. Packages obtain component-scoped loggers from the global
// instance configured at startup.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Format selects the output encoding.
type Format int

const (
	TextFormat Format = iota
	JSONFormat
)

// Entry is one structured log record.
type Entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Component string                 `json:"component,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Logger writes leveled, optionally component-scoped log entries.
type Logger struct {
	mu        sync.RWMutex
	level     Level
	format    Format
	output    io.Writer
	component string
}

// Config holds logger construction options.
type Config struct {
	Level     Level
	Format    Format
	Output    io.Writer
	Component string
}

// New creates a logger.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Logger{
		level:     cfg.Level,
		format:    cfg.Format,
		output:    cfg.Output,
		component: cfg.Component,
	}
}

// NewDefault creates an INFO-level text logger on stdout.
func NewDefault() *Logger {
	return New(Config{Level: INFO, Format: TextFormat})
}

// WithComponent returns a child logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &Logger{
		level:     l.level,
		format:    l.format,
		output:    l.output,
		component: component,
	}
}

// SetLevel sets the minimum level that is emitted.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetFormat sets the output encoding.
func (l *Logger) SetFormat(format Format) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = format
}

func (l *Logger) log(level Level, message string, fields map[string]interface{}, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level < l.level {
		return
	}

	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	var line string
	if l.format == JSONFormat {
		encoded, _ := json.Marshal(entry)
		line = string(encoded) + "\n"
	} else {
		line = formatText(entry)
	}
	l.output.Write([]byte(line))

	if level == FATAL {
		os.Exit(1)
	}
}

func formatText(entry Entry) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s] %s", entry.Timestamp, entry.Level))
	if entry.Component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", entry.Component))
	}
	parts = append(parts, entry.Message)
	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for k, v := range entry.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, "{"+strings.Join(fieldParts, ", ")+"}")
	}
	if entry.Error != "" {
		parts = append(parts, "error="+entry.Error)
	}
	return strings.Join(parts, " ") + "\n"
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, fields ...map[string]interface{}) {
	l.log(DEBUG, message, firstField(fields), nil)
}

// Info logs an info message.
func (l *Logger) Info(message string, fields ...map[string]interface{}) {
	l.log(INFO, message, firstField(fields), nil)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, fields ...map[string]interface{}) {
	l.log(WARN, message, firstField(fields), nil)
}

// Error logs an error message.
func (l *Logger) Error(message string, err error, fields ...map[string]interface{}) {
	l.log(ERROR, message, firstField(fields), err)
}

// Fatal logs a fatal message and exits the process.
func (l *Logger) Fatal(message string, err error, fields ...map[string]interface{}) {
	l.log(FATAL, message, firstField(fields), err)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Debug(fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a formatted fatal message and exits the process.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.Fatal(fmt.Sprintf(format, args...), nil)
}

func firstField(fields []map[string]interface{}) map[string]interface{} {
	if len(fields) > 0 {
		return fields[0]
	}
	return nil
}
