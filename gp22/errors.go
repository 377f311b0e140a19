package gp22

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by operations that need the bus before
// Initialize has succeeded, or after Close.
var ErrNotInitialized = errors.New("gp22: driver not initialized")

// RegisterOutOfRangeError indicates a register index outside the chip's register file.
type RegisterOutOfRangeError struct {
	// Kind is "result" or "config"
	Kind  string
	Index int
	Max   int
}

func (e *RegisterOutOfRangeError) Error() string {
	return fmt.Sprintf("%s register %d is out of range: valid range is 0-%d",
		e.Kind, e.Index, e.Max)
}

// InvalidHitsError indicates an expected hit count the chip cannot be set to.
type InvalidHitsError struct {
	Hits int
}

func (e *InvalidHitsError) Error() string {
	return fmt.Sprintf("invalid expected hits %d: must be 2, 3 or 4", e.Hits)
}
