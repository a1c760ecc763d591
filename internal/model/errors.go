package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientArguments is returned when the query or path is missing.
	ErrInsufficientArguments = errors.New("insufficient arguments")

	// ErrInvalidText is returned when the target file is not valid UTF-8.
	ErrInvalidText = errors.New("stream did not contain valid UTF-8")
)

// ValidationError reports a problem with the invocation arguments.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return e.Reason.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// IOError reports that the target file could not be loaded as text.
type IOError struct {
	Path  Path
	Cause error
}

func (e *IOError) Error() string {
	if errors.Is(e.Cause, ErrInvalidText) {
		return fmt.Sprintf("%s: %v", e.Path, e.Cause)
	}

	// os.PathError already carries the path.
	return e.Cause.Error()
}

func (e *IOError) Unwrap() error {
	return e.Cause
}
