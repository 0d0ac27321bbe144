// Package apperr defines the request-level error value used across all
// handlers. Handlers raise an *Error with a user-facing message and an
// HTTP status code; the centralized responder in the handler package
// turns it into the wire envelope. Anything that is not an *Error is
// reported as a 500.
package apperr

import "fmt"

// Error carries a message and the HTTP status code it should be
// reported with.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string { return e.Message }

// New returns an *Error with the given message and status code.
func New(message string, statusCode int) *Error {
	return &Error{Message: message, StatusCode: statusCode}
}

// InvalidField reports a malformed identifier or similarly unparseable
// value as a 400, mirroring how a bad path parameter is surfaced.
func InvalidField(field string) *Error {
	return &Error{Message: fmt.Sprintf("Invalid %s", field), StatusCode: 400}
}
