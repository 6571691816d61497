package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrNotConfigured signals that the graph store has no configured driver.
	ErrNotConfigured = errors.New("graph store not configured")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyExists signals a uniqueness conflict at registration.
	ErrAlreadyExists = errors.New("already exists")
)
