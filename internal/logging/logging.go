// Package logging gives every package of the editor one shared structured
// logger. Until main configures it, records are dropped without being
// formatted, so library code and tests stay quiet.
package logging

import (
	"log/slog"
	"sync/atomic"
)

var shared atomic.Pointer[slog.Logger]

func init() {
	shared.Store(silent())
}

func silent() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger installs l as the shared logger. nil switches logging off again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent()
	}
	shared.Store(l)
}

// Logger returns the shared logger. It is never nil.
func Logger() *slog.Logger {
	return shared.Load()
}

// ParseLevel reads a log_level setting such as "debug" or "WARN". Names slog
// does not know fall back to Info.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
