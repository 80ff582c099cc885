// Package envfetch reads process environment variables through two
// accessors that differ only in how blank values are classified.
//
// Strict returns bindings exactly as stored, empty strings included.
// Lenient treats a variable bound to an empty or whitespace-only string
// as unset, so defaulting, mapping, and requiring all see it as absent.
//
// The zero value of either accessor reads the process environment:
//
//	var env envfetch.Lenient
//
//	host := env.LookupOr("DB_HOST", "localhost")
//	dsn, err := env.Require("DB_DSN")
//
// Typed values go through the generic mapped lookups, with a
// caller-supplied mapping function or one of the ready-made mappers in
// the parse subpackage:
//
//	port, err := envfetch.LookupMappedOr(env, "DB_PORT", 5432, parse.Int)
//
// Accessors never write to the environment and never cache: every call
// re-queries the process state. Since no write path exists, concurrent
// use needs no coordination.
package envfetch
