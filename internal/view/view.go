package view

const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Response is the envelope every query answers with: a status discriminator
// plus either the shaped output or a human-readable error message. Internal
// identifiers and stack traces never leak into Error.
type Response struct {
	Status string `json:"status"`
	Output any    `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

func Succeeded(output any) Response {
	return Response{
		Status: StatusSucceeded,
		Output: output,
	}
}

func Failed(err error) Response {
	return Response{
		Status: StatusFailed,
		Error:  err.Error(),
	}
}
