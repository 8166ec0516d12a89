package logger

import (
	"os"
	"strings"
)

var globalLogger *Logger

func init() {
	globalLogger = NewDefault()
	configureFromEnv()
}

func configureFromEnv() {
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level, ok := ParseLevel(levelStr); ok {
			globalLogger.SetLevel(level)
		}
	}
	if formatStr := os.Getenv("LOG_FORMAT"); formatStr != "" {
		if format, ok := ParseFormat(formatStr); ok {
			globalLogger.SetFormat(format)
		}
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(level string) (Level, bool) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	case "FATAL":
		return FATAL, true
	default:
		return 0, false
	}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(format string) (Format, bool) {
	switch strings.ToLower(format) {
	case "json":
		return JSONFormat, true
	case "text":
		return TextFormat, true
	default:
		return 0, false
	}
}

// GetGlobalLogger returns the process-wide logger.
func GetGlobalLogger() *Logger {
	return globalLogger
}

// SetGlobalLogger replaces the process-wide logger.
func SetGlobalLogger(l *Logger) {
	globalLogger = l
}

// Debugf logs a formatted debug message on the global logger.
func Debugf(format string, args ...interface{}) {
	globalLogger.Debugf(format, args...)
}

// Infof logs a formatted info message on the global logger.
func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

// Warnf logs a formatted warning message on the global logger.
func Warnf(format string, args ...interface{}) {
	globalLogger.Warnf(format, args...)
}

// Errorf logs a formatted error message on the global logger.
func Errorf(format string, args ...interface{}) {
	globalLogger.Errorf(format, args...)
}

// Fatalf logs a formatted fatal message on the global logger and exits.
func Fatalf(format string, args ...interface{}) {
	globalLogger.Fatalf(format, args...)
}
