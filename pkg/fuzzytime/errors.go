package fuzzytime

import (
	"errors"
	"fmt"
)

const (
	// CodeTimeConversion tags every conversion failure.
	CodeTimeConversion = "Time conversion error"

	msgNotConvertible = "The date you entered was not convertible to a Unix timestamp. Check the format and spelling."
	msgNoDuration     = "The duration you entered was not convertible to seconds. Check the format and spelling."
)

// ErrTimeConversion is matched by every [ConversionError].
var ErrTimeConversion = errors.New("time conversion failed")

// ConversionError reports text that could not be resolved to a timestamp or duration.
type ConversionError struct {
	Input   string
	Message string
	Code    string
	err     error
}

func (e *ConversionError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Code, e.err)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Unwrap returns the underlying parser error, if any, alongside [ErrTimeConversion].
func (e *ConversionError) Unwrap() []error {
	if e.err != nil {
		return []error{ErrTimeConversion, e.err}
	}
	return []error{ErrTimeConversion}
}

func dateError(input string, err error) *ConversionError {
	return &ConversionError{Input: input, Message: msgNotConvertible, Code: CodeTimeConversion, err: err}
}

func durationError(input string, err error) *ConversionError {
	return &ConversionError{Input: input, Message: msgNoDuration, Code: CodeTimeConversion, err: err}
}
