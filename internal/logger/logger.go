package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)
	logg.SetLevel(levelFromEnv())
}

func Get() *logrus.Logger {
	return logg
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// LogError records a failure with enough context to trace it back to the
// operation that produced it.
func LogError(module string, operation string, err error, fields logrus.Fields) {
	entry := logg.WithFields(logrus.Fields{
		"module":    module,
		"operation": operation,
	})
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Error(err.Error())
}
