package envfetch

import "fmt"

// MissingVariableError is returned by Require and RequireMapped when the
// requested variable is not set (or is blank, under Lenient semantics).
type MissingVariableError struct {
	Key string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Key)
}
