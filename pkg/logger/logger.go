package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus to provide structured logging for the application
type Logger struct {
	*logrus.Logger
}

// Entry wraps a logrus entry so chained WithField calls keep our API
type Entry struct {
	*logrus.Entry
}

// NewLogger creates a new logger with the given level and format ("json" or "text")
func NewLogger(level, format string) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		parsedLevel = logrus.InfoLevel
	}
	log.SetLevel(parsedLevel)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &Logger{Logger: log}
}

// WithField adds a single field to the log entry
func (l *Logger) WithField(key string, value interface{}) *Entry {
	return &Entry{l.Logger.WithField(key, value)}
}

// WithFields adds multiple fields to the log entry
func (l *Logger) WithFields(fields map[string]interface{}) *Entry {
	return &Entry{l.Logger.WithFields(logrus.Fields(fields))}
}

// WithError adds an error field to the log entry
func (l *Logger) WithError(err error) *Entry {
	return &Entry{l.Logger.WithError(err)}
}

// WithField adds a further field to an existing entry
func (e *Entry) WithField(key string, value interface{}) *Entry {
	return &Entry{e.Entry.WithField(key, value)}
}

// WithFields adds further fields to an existing entry
func (e *Entry) WithFields(fields map[string]interface{}) *Entry {
	return &Entry{e.Entry.WithFields(logrus.Fields(fields))}
}

// WithError adds an error field to an existing entry
func (e *Entry) WithError(err error) *Entry {
	return &Entry{e.Entry.WithError(err)}
}
