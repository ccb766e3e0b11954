package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrNoSession indicates an operation requiring a logged-in user ran without one.
	ErrNoSession = errors.New("no active session")
)
