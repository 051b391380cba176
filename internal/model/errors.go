package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies where in a request/playback cycle an error happened
type ErrorKind string

const (
	// KindTransport means the request could not be sent or the response not received
	KindTransport ErrorKind = "transport"

	// KindStatus means the response status indicates failure
	KindStatus ErrorKind = "status"

	// KindPayload means the status succeeded but the payload failed a validity check
	KindPayload ErrorKind = "payload"

	// KindPlayback means the audio could not be played
	KindPlayback ErrorKind = "playback"

	// KindPrecondition means the action was taken with empty or insufficient input
	KindPrecondition ErrorKind = "precondition"
)

// Error is the error type returned by the API client and the controllers.
// Message holds a human-readable message supplied by the server, if any.
type Error struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	Message    string
	Cause      error
}

// NewError creates an Error of the given kind
func NewError(kind ErrorKind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Cause: cause}
}

// Error returns a diagnostic representation for logs
func (e *Error) Error() string {
	base := fmt.Sprintf("%s %s error", e.Op, e.Kind)
	if e.StatusCode != 0 {
		base += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		base += ": " + e.Message
	}
	if e.Cause != nil {
		base += ": " + e.Cause.Error()
	}
	return base
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithStatusCode sets the HTTP status code
func (e *Error) WithStatusCode(code int) *Error {
	e.StatusCode = code
	return e
}

// KindOf returns the kind of err, or an empty kind if err is not an *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// UserMessage returns the server-supplied message carried by err, if any
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
