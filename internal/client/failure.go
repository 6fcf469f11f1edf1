package client

import (
	"encoding/json"
	"fmt"
)

// Failure is the normalized form of anything that goes wrong with a
// submission: one human-readable message, the HTTP status when a server
// replied, and the raw payload behind the detail toggle.
type Failure struct {
	Message string
	Status  int
	Detail  string
}

func (f *Failure) Error() string {
	return f.Message
}

// localFailure reports a validation problem caught before any network
// call.
func localFailure(format string, args ...any) *Failure {
	return &Failure{Message: fmt.Sprintf(format, args...)}
}

// serverFailure extracts the displayable message from a failure
// response, preferring the server-supplied error string and falling
// back to the status line. The raw body is kept for the detail view.
func serverFailure(status int, body []byte) *Failure {
	f := &Failure{
		Message: fmt.Sprintf("Request failed with status %d", status),
		Status:  status,
		Detail:  string(body),
	}

	var decoded struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error != "" {
		f.Message = decoded.Error
	}
	return f
}

// transportFailure wraps a network-level error that produced no server
// reply at all.
func transportFailure(message string, err error) *Failure {
	return &Failure{Message: message, Detail: err.Error()}
}
