// Package xlog is the shared structured-logging entry point used by
// the consensus-facing wrapper package splitcore.
// The pure decision packages (splitpolicy, splitengine, shadow,
// eventlog, rewardband, vault, encoding, epoch) never import this
// package: logging is a side effect applied at the edge, not inside
// a decision path.
package xlog

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	base *logrus.Logger
)

// Logger returns the shared logrus logger, configured once with a
// text formatter and a level read from SPLITCHAIN_LOG_LEVEL (default
// "info").
func Logger() *logrus.Logger {
	once.Do(func() {
		base = logrus.New()
		base.SetOutput(os.Stderr)
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		level := logrus.InfoLevel
		if lv, err := logrus.ParseLevel(os.Getenv("SPLITCHAIN_LOG_LEVEL")); err == nil {
			level = lv
		}
		base.SetLevel(level)
	})
	return base
}

// With returns a logrus.Entry pre-tagged with component=name, the
// convention splitcore uses to identify its log lines.
func With(component string) *logrus.Entry {
	return Logger().WithField("component", component)
}
