// Package logging provides the structured logging abstraction used by every
// fincontrol component. Components depend on the Logger interface so tests can
// capture entries with MockLogger instead of parsing logrus output.
package logging

import (
	"os"
	"strings"
	"sync"
)

// Logger defines the structured logging contract for the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a derived logger carrying err as a field.
	WithError(err error) Logger

	// WithField returns a derived logger carrying one extra field.
	WithField(key string, value interface{}) Logger

	// WithFields returns a derived logger carrying the given fields.
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

var (
	defaultOnce   sync.Once
	defaultLogger Logger
)

// GetLogger returns the process-wide default logger. Its level and format come
// from LOG_LEVEL and LOG_FORMAT; the container replaces it with a configured
// logger once the configuration is loaded.
func GetLogger() Logger {
	defaultOnce.Do(func() {
		level := strings.ToLower(os.Getenv("LOG_LEVEL"))
		if level == "" {
			level = "info"
		}
		defaultLogger = NewLogrusAdapter(level, strings.ToLower(os.Getenv("LOG_FORMAT")))
	})
	return defaultLogger
}
