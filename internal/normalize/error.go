package normalize

import "fmt"

// Error reports a required field that was missing or malformed in an
// otherwise-successful upstream response. It is deliberately a different type
// from upstream.Error: the aggregator never swallows it, even for optional
// sources.
type Error struct {
	Provider string
	Field    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: missing required field: %s", e.Provider, e.Field)
}

func missingField(provider, field string) *Error {
	return &Error{Provider: provider, Field: field}
}
