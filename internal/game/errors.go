package game

import (
	"errors"
	"fmt"
)

// ErrSessionOver is returned by Step once the secret has been found.
var ErrSessionOver = errors.New("session already won")

// ParseReason classifies why a line was not accepted as a guess.
type ParseReason int

const (
	ReasonNotANumber ParseReason = iota
	ReasonEmpty
	ReasonNegative
	ReasonOverflow
)

// String returns a short description used in log fields.
func (r ParseReason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonNegative:
		return "negative"
	case ReasonOverflow:
		return "overflow"
	default:
		return "not a number"
	}
}

// ParseError reports a line that is not a valid guess. It is recoverable:
// the session state is untouched and the next line may be read.
type ParseError struct {
	Input  string
	Reason ParseReason
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid guess %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InputStreamError reports that the guess source could not be read,
// including a stream that closed before a line arrived. It is fatal.
type InputStreamError struct {
	Err error
}

func (e *InputStreamError) Error() string {
	return fmt.Sprintf("failed to read guess: %v", e.Err)
}

func (e *InputStreamError) Unwrap() error {
	return e.Err
}

// OutputStreamError reports that feedback could not be written, for
// example to a closed pipe. It is fatal.
type OutputStreamError struct {
	Err error
}

func (e *OutputStreamError) Error() string {
	return fmt.Sprintf("failed to write feedback: %v", e.Err)
}

func (e *OutputStreamError) Unwrap() error {
	return e.Err
}

// IsParseError checks if an error is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsInputStreamError checks if an error is an InputStreamError.
func IsInputStreamError(err error) bool {
	var ie *InputStreamError
	return errors.As(err, &ie)
}

// IsOutputStreamError checks if an error is an OutputStreamError.
func IsOutputStreamError(err error) bool {
	var oe *OutputStreamError
	return errors.As(err, &oe)
}
