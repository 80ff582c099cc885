package envfetch

// Strict reads environment bindings exactly as stored: a variable bound
// to an empty or whitespace-only string is still a present variable.
type Strict struct {
	src Source
}

// NewStrict creates a Strict accessor over src. The zero value reads
// the process environment.
func NewStrict(src Source) Strict {
	return Strict{src: src}
}

func (s Strict) source() Source {
	if s.src == nil {
		return osSource{}
	}
	return s.src
}

// Lookup returns the raw value bound to key, or false when key is
// unbound.
func (s Strict) Lookup(key string) (string, bool) {
	return s.source().LookupEnv(key)
}

// LookupOr returns the value bound to key, or def when key is unbound.
func (s Strict) LookupOr(key, def string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return def
}

// LookupOrElse returns the value bound to key, or the result of def when
// key is unbound. def is invoked only on the miss path.
func (s Strict) LookupOrElse(key string, def func() string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return def()
}

// Require returns the value bound to key, or a *MissingVariableError
// when key is unbound.
func (s Strict) Require(key string) (string, error) {
	v, ok := s.Lookup(key)
	if !ok {
		return "", &MissingVariableError{Key: key}
	}
	return v, nil
}
