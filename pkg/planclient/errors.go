package planclient

import "fmt"

// ErrorKind classifies a failed generation attempt.
type ErrorKind int

const (
	// ErrorValidation means the payload never left the client.
	ErrorValidation ErrorKind = iota
	// ErrorTimeout means the cancellation ceiling elapsed before completion.
	ErrorTimeout
	// ErrorTransport means the request failed before streaming began.
	ErrorTransport
	// ErrorUpstream means the generation service failed, possibly mid-stream.
	ErrorUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorValidation:
		return "validation"
	case ErrorTimeout:
		return "timeout"
	case ErrorTransport:
		return "transport"
	case ErrorUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// User-facing messages for each failure class.
const (
	msgTimeout     = "Request timed out. The service may be busy, please try again."
	msgRateLimited = "The service is rate limited right now. Please wait a moment and try again."
	msgUpstream    = "Failed to generate trip plan. Please try again."
)

// PlanError is the single user-facing error of a failed attempt.
type PlanError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *PlanError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PlanError) Unwrap() error {
	return e.cause
}
