package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

const (
	FormatJSON = "json"
	FormatText = "text"
)

// InitLogger initializes the structured logger with proper configuration.
// An empty format means JSON in production and text in development.
func InitLogger(logLevel string, isDevelopment bool, format string) *logrus.Logger {
	log := logrus.New()

	if logLevel == "" {
		if isDevelopment {
			logLevel = "debug"
		} else {
			logLevel = "info"
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	useJSON := !isDevelopment
	switch strings.ToLower(format) {
	case FormatJSON:
		useJSON = true
	case FormatText:
		useJSON = false
	}

	if useJSON {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	log.SetOutput(os.Stderr)

	Logger = log

	return log
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		return InitLogger("info", false, "")
	}
	return Logger
}

// Discard returns a logger that drops everything, for tests
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

// WithService creates a logger with service context
func WithService(serviceName string) *logrus.Entry {
	return GetLogger().WithField("service", serviceName)
}

// WithCareer creates a logger with career context
func WithCareer(careerID string) *logrus.Entry {
	return GetLogger().WithField("career_id", careerID)
}

// WithMatch creates a logger with match context
func WithMatch(entry *logrus.Entry, team1, team2 string, format string) *logrus.Entry {
	return entry.WithFields(logrus.Fields{
		"team1":  team1,
		"team2":  team2,
		"format": format,
	})
}
