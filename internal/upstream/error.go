package upstream

import "fmt"

type ErrorKind string

const (
	KindStatus    ErrorKind = "status"
	KindTransport ErrorKind = "transport"
	KindParse     ErrorKind = "parse"
)

// Error is the typed failure of a single upstream call. Kind distinguishes a
// non-success HTTP status from a transport failure from an unparseable body;
// the aggregator's isolate-with-default policy keys off this type.
type Error struct {
	Provider   string
	Endpoint   string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: unexpected status code %d from %s", e.Provider, e.StatusCode, e.Endpoint)
	case KindParse:
		return fmt.Sprintf("%s: failed to parse response from %s: %v", e.Provider, e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("%s: request to %s failed: %v", e.Provider, e.Endpoint, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
