package life

import "errors"

var (
	// ErrInvalidDimension reports a grid length of zero, a negative length,
	// or a length above MaxLength.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds reports a row or column outside [0, length).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNoGrid reports a simulation used without an attached grid.
	ErrNoGrid = errors.New("simulation has no grid")
)
