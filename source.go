package envfetch

import (
	"log/slog"
	"os"
)

// Source supplies raw environment bindings: the string bound to a key,
// or absence when the key is unbound.
type Source interface {
	LookupEnv(key string) (string, bool)
}

type osSource struct{}

func (osSource) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// OS returns a Source backed by the process environment. Every call
// re-queries the environment; nothing is cached.
func OS() Source {
	return osSource{}
}

// Map is a fixed in-memory Source. It is mainly useful in tests, where
// it stands in for the process environment.
type Map map[string]string

// LookupEnv returns the value stored under key.
func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Logged wraps src so that every lookup emits a debug record on logger.
func Logged(src Source, logger *slog.Logger) Source {
	return loggedSource{src: src, logger: logger}
}

type loggedSource struct {
	src    Source
	logger *slog.Logger
}

func (l loggedSource) LookupEnv(key string) (string, bool) {
	v, ok := l.src.LookupEnv(key)
	l.logger.Debug("environment lookup", "key", key, "found", ok)
	return v, ok
}
