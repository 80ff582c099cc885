package envfetch

import "strings"

// Lenient reads environment bindings but treats a variable bound to an
// empty or whitespace-only string as unset. Defaulting, mapping, and
// requiring are all built on Lookup, so they inherit that treatment.
type Lenient struct {
	src Source
}

// NewLenient creates a Lenient accessor over src. The zero value reads
// the process environment.
func NewLenient(src Source) Lenient {
	return Lenient{src: src}
}

func (l Lenient) source() Source {
	if l.src == nil {
		return osSource{}
	}
	return l.src
}

// Lookup returns the value bound to key, or false when key is unbound
// or its value is blank.
func (l Lenient) Lookup(key string) (string, bool) {
	v, ok := l.source().LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// LookupOr returns the value bound to key, or def when key is unbound
// or blank.
func (l Lenient) LookupOr(key, def string) string {
	if v, ok := l.Lookup(key); ok {
		return v
	}
	return def
}

// LookupOrElse returns the value bound to key, or the result of def
// when key is unbound or blank. def is invoked only on the miss path.
func (l Lenient) LookupOrElse(key string, def func() string) string {
	if v, ok := l.Lookup(key); ok {
		return v
	}
	return def()
}

// Require returns the value bound to key, or a *MissingVariableError
// when key is unbound or blank.
func (l Lenient) Require(key string) (string, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return "", &MissingVariableError{Key: key}
	}
	return v, nil
}
