// Package parse provides ready-made mapping functions for the generic
// lookups in envfetch. Every mapper has the func(string) (T, error)
// shape expected by LookupMapped, LookupMappedOr, and RequireMapped.
package parse

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Int parses a base-10 integer.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

// Int64 parses a base-10 64-bit integer.
func Int64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Uint64 parses a base-10 unsigned 64-bit integer.
func Uint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// Float64 parses a 64-bit floating point number.
func Float64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// Bool parses a boolean, accepting the forms strconv.ParseBool accepts
// (1, t, true, 0, f, false, in any case).
func Bool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

// Duration parses a Go duration string such as "30s" or "1h30m".
func Duration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

// Time parses an RFC 3339 timestamp.
func Time(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// URL parses an absolute URL.
func URL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, &NotAbsoluteURLError{Value: s}
	}
	return u, nil
}

// UUID parses an RFC 4122 UUID.
func UUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Decimal parses an arbitrary-precision decimal number.
func Decimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// Bytes decodes a standard base64 string.
func Bytes(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// Strings returns a mapper that splits on sep, trims each entry, and
// drops blank entries. "a, ,b" with sep "," maps to ["a", "b"].
func Strings(sep string) func(string) ([]string, error) {
	return func(s string) ([]string, error) {
		parts := strings.Split(s, sep)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
		return out, nil
	}
}

// Ints returns a mapper that splits on sep like Strings, then parses
// each entry as a base-10 integer.
func Ints(sep string) func(string) ([]int, error) {
	split := Strings(sep)
	return func(s string) ([]int, error) {
		parts, _ := split(s)
		out := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
}
