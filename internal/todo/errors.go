package todo

import "errors"

var (
	// ErrInvalidID is returned when identifier text is not a well-formed ID
	ErrInvalidID = errors.New("invalid todo id")

	// ErrNotFound is returned when no Todo exists for the requested ID
	ErrNotFound = errors.New("todo not found")
)
