package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input, e.g. an
	// add form submitted without its required name field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoTrip indicates no baseline catalog could be loaded.
	ErrNoTrip = errors.New("no trip data")
)
