package envfetch

// Accessor resolves environment bindings. Strict and Lenient both
// satisfy it, differing only in whether a blank value counts as present.
type Accessor interface {
	Lookup(key string) (string, bool)
}

// LookupMapped resolves key through env and applies fn to the raw value.
// It reports found == false when the binding is absent, in which case fn
// is not invoked. fn's error is returned unmodified.
//
// Methods cannot carry type parameters, so the mapped lookups are
// package-level functions taking the accessor as first argument.
func LookupMapped[T any](env Accessor, key string, fn func(string) (T, error)) (mapped T, found bool, err error) {
	v, ok := env.Lookup(key)
	if !ok {
		var zero T
		return zero, false, nil
	}
	mapped, err = fn(v)
	return mapped, true, err
}

// LookupMappedOr resolves key through env and applies fn to the raw
// value, returning def when the binding is absent. fn is not invoked on
// absence; its error is returned unmodified.
func LookupMappedOr[T any](env Accessor, key string, def T, fn func(string) (T, error)) (T, error) {
	v, ok := env.Lookup(key)
	if !ok {
		return def, nil
	}
	return fn(v)
}

// LookupMappedOrElse is LookupMappedOr with a lazy default. def is
// invoked only on the miss path.
func LookupMappedOrElse[T any](env Accessor, key string, def func() T, fn func(string) (T, error)) (T, error) {
	v, ok := env.Lookup(key)
	if !ok {
		return def(), nil
	}
	return fn(v)
}

// RequireMapped resolves key through env and applies fn to the raw
// value, returning a *MissingVariableError when the binding is absent.
// fn is never invoked on absence; its error is returned unmodified.
func RequireMapped[T any](env Accessor, key string, fn func(string) (T, error)) (T, error) {
	v, ok := env.Lookup(key)
	if !ok {
		var zero T
		return zero, &MissingVariableError{Key: key}
	}
	return fn(v)
}
