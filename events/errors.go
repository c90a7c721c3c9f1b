package events

import "errors"

var (
	// ErrInvalidArgument is returned when a required constructor argument is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownMethod is returned when a binding names a method the receiver does not have.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrEmptyEvent is returned when a binding spec has no event name.
	ErrEmptyEvent = errors.New("empty event name")
)
