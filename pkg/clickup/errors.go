package clickup

import (
	"errors"
	"fmt"
)

// Codes for failures detected before or outside the HTTP exchange.
const (
	CodePriorityOutOfRange = "Priority out of range"
	CodeTimeConversion     = "Time conversion error"
	CodeInvalidOrderBy     = "Invalid order_by value"
	CodeInvalidArgument    = "Invalid argument"
	CodeMalformedResponse  = "Malformed response"
	CodeTransport          = "Transport error"
)

var (
	// ErrMalformedErrorPayload is wrapped when a failing response carries no "err" field.
	ErrMalformedErrorPayload = errors.New("error response missing err field")

	// ErrRateLimited is wrapped by the [ClientError] returned for HTTP 429.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ClientError is the single error kind surfaced by [Client].
//
// Code holds the HTTP status as text for remote failures, or one of the Code* constants for local ones.
type ClientError struct {
	Message    string
	Code       string
	StatusCode int
	ECode      string
	err        error
}

func (e *ClientError) Error() string {
	msg := fmt.Sprintf("clickup: %s (%s)", e.Message, e.Code)
	if e.ECode != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.ECode)
	}
	if e.err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

func (e *ClientError) Unwrap() error { return e.err }

// IsCode reports whether err is a [ClientError] with the given code.
func IsCode(err error, code string) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Code == code
}

func argumentError(format string, args ...any) *ClientError {
	return &ClientError{Message: fmt.Sprintf(format, args...), Code: CodeInvalidArgument}
}

func transportError(msg string, err error) *ClientError {
	return &ClientError{Message: msg, Code: CodeTransport, err: err}
}
