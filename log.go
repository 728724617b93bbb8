package finengine

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// Logger returns the logger shared by the engine packages.
//
// The engine only logs at debug level (skipped overrides, clamped amounts); callers
// raise the level to see them.
func Logger() *logrus.Logger { return logger }

// Log returns an entry tagged with the engine component name.
func Log(component string) *logrus.Entry {
	return logger.WithField("component", component)
}
