// Package rlog centralizes the structured logger used across the
// scheduler. Every package that needs to log takes a *logrus.Entry
// (or falls back to Default()) rather than calling logrus's package
// level functions directly, so a ThreadPool's Config.Logger can be
// threaded all the way down to a single worker's steal loop.
package rlog

import "github.com/sirupsen/logrus"

var base = logrus.New()

func init() {
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Default returns the package-wide fallback logger, used whenever a
// Config does not supply its own.
func Default() *logrus.Logger {
	return base
}

// For returns a *logrus.Entry scoped to component, preferring logger
// when non-nil.
func For(logger *logrus.Logger, component string) *logrus.Entry {
	if logger == nil {
		logger = base
	}
	return logger.WithField("component", component)
}
