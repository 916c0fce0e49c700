package tvmaze

import (
	"errors"
	"fmt"
	"net/http"
)

// FailureKind classifies why a fetch failed.
type FailureKind int

const (
	// TransportFailure means the request never produced a response.
	TransportFailure FailureKind = iota
	// StatusFailure means the server answered with a non-2xx status.
	StatusFailure
	// DecodeFailure means the body was not the expected JSON.
	DecodeFailure
)

func (k FailureKind) String() string {
	switch k {
	case TransportFailure:
		return "transport failure"
	case StatusFailure:
		return "status failure"
	case DecodeFailure:
		return "decode failure"
	default:
		return "unknown failure"
	}
}

// FetchError is returned by every failing request of the Client.
type FetchError struct {
	Kind       FailureKind
	StatusCode int
	URL        string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case StatusFailure:
		return fmt.Sprintf("%s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Detail is a short human explanation of the failure, shown under the error message.
func (e *FetchError) Detail() string {
	switch e.Kind {
	case TransportFailure:
		return "Could not reach the server. Check your connection and try again."
	case StatusFailure:
		return fmt.Sprintf("The server responded with status %d.", e.StatusCode)
	case DecodeFailure:
		return "The server sent a response that could not be read."
	default:
		return ""
	}
}

// ErrNotFound is returned when a show reference matches nothing.
var ErrNotFound = errors.New("show not found")
