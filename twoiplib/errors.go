package twoiplib

import (
	"errors"
	"fmt"
)

var (
	ErrClientClosed        = errors.New("client instance was closed")
	ErrNoCoordinates       = errors.New("record has no coordinates")
	ErrNoRange             = errors.New("record has no address range")
	ErrNoWebsite           = errors.New("record has no website")
	ErrUnknownDistanceUnit = errors.New("unknown distance unit")
)

// InvalidAddressError is returned when a given input cannot be parsed
// as an IP address and a client runs in strict mode.
type InvalidAddressError struct {
	Input string
	Err   error
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("cannot parse %q as an ip address: %v", e.Input, e.Err)
}

func (e *InvalidAddressError) Unwrap() error {
	return e.Err
}

// UnknownFieldError is returned when a caller requests an output field
// or a sort key which is not present in a schema of the collection.
type UnknownFieldError struct {
	Field      string
	Suggestion string
}

func (e *UnknownFieldError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown field %q (did you mean %q?)", e.Field, e.Suggestion)
	}

	return fmt.Sprintf("unknown field %q", e.Field)
}
