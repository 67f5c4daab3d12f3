package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrLineOutOfRange is returned when a line index does not name an
	// existing line.
	ErrLineOutOfRange = errors.New("line index out of range")

	// ErrInvalidPosition is returned when an offset or position does
	// not resolve to a location inside the buffer.
	ErrInvalidPosition = errors.New("invalid buffer position")

	// ErrInvalidRange is returned when a range's start is after its end
	// or either bound is out of the buffer.
	ErrInvalidRange = errors.New("invalid buffer range")

	// ErrNoTransaction is returned when End or Cancel is called without
	// a matching Begin.
	ErrNoTransaction = errors.New("no active transaction")
)
