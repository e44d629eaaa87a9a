package logging

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a logrus logger writing to stderr, or appending to logFile when set.
func NewLogger(level string, logFile string) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			logger.Errorf("Failed to create log directory: %v", err)
		}
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.Errorf("Failed to open log file: %v", err)
		} else {
			logger.SetOutput(file)
		}
	}

	return logger
}
