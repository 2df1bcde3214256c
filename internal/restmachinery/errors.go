package restmachinery

import "fmt"

type ErrConfiguration struct {
	Reason string `json:"reason"`
}

func NewErrConfiguration(reason string) *ErrConfiguration {
	return &ErrConfiguration{
		Reason: reason,
	}
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("Invalid client configuration: %s", e.Reason)
}

// ErrHTTP represents a non-2xx response from the management API. When the
// server sends a JSON error document, its error and reason fields are
// carried along.
type ErrHTTP struct {
	StatusCode  int    `json:"-"`
	ServerError string `json:"error"`
	Reason      string `json:"reason"`
}

func NewErrHTTP(statusCode int) *ErrHTTP {
	return &ErrHTTP{
		StatusCode: statusCode,
	}
}

func (e *ErrHTTP) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf(
			"received %d from the management API: %s",
			e.StatusCode,
			e.Reason,
		)
	}
	if e.ServerError != "" {
		return fmt.Sprintf(
			"received %d from the management API: %s",
			e.StatusCode,
			e.ServerError,
		)
	}
	return fmt.Sprintf("received %d from the management API", e.StatusCode)
}

type ErrDecoding struct {
	Reason string `json:"reason"`
}

func NewErrDecoding(reason string) *ErrDecoding {
	return &ErrDecoding{
		Reason: reason,
	}
}

func (e *ErrDecoding) Error() string {
	return fmt.Sprintf("Could not decode the response body: %s", e.Reason)
}
