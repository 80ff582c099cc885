package parse

import (
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// JSONField returns a mapper that extracts the value at path from a
// JSON-valued variable, using gjson path syntax (e.g. "database.host").
func JSONField(path string) func(string) (string, error) {
	return func(s string) (string, error) {
		if !gjson.Valid(s) {
			return "", &InvalidJSONError{}
		}
		res := gjson.Get(s, path)
		if !res.Exists() {
			return "", &MissingFieldError{Path: path}
		}
		return res.String(), nil
	}
}

// YAML returns a mapper that decodes a YAML-valued variable into T.
// JSON documents decode too, since YAML is a superset.
func YAML[T any]() func(string) (T, error) {
	return func(s string) (T, error) {
		var out T
		if err := yaml.Unmarshal([]byte(s), &out); err != nil {
			var zero T
			return zero, err
		}
		return out, nil
	}
}
