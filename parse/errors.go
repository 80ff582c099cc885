package parse

import "fmt"

// NotAbsoluteURLError is returned by URL when the value parses but has
// no scheme.
type NotAbsoluteURLError struct {
	Value string
}

func (e *NotAbsoluteURLError) Error() string {
	return fmt.Sprintf("%s is not an absolute URL", e.Value)
}

// InvalidJSONError is returned by JSONField mappers when the value is
// not a valid JSON document.
type InvalidJSONError struct{}

func (e *InvalidJSONError) Error() string {
	return "value is not a valid JSON document"
}

// MissingFieldError is returned by JSONField mappers when the document
// has no value at the requested path.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("JSON document has no value at path %s", e.Path)
}
