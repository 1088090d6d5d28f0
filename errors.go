package arena

import "github.com/pkg/errors"

// Failure kinds returned by heap operations. All of them are recoverable:
// the heap stays in its last valid state and the caller decides what to do.
var (
	// ErrOccupied is returned when a position-specific allocation targets a live cell.
	ErrOccupied = errors.New("cell is occupied")

	// ErrNoFreeMemory is returned when a first-fit allocation finds no free cell.
	ErrNoFreeMemory = errors.New("no free cell available")

	// ErrDataIsFree is returned when an operation requiring occupied cells was given a free one.
	ErrDataIsFree = errors.New("cell is free, not suitable for use")

	// ErrOutOfRange is returned when a cell index does not exist in the heap.
	ErrOutOfRange = errors.New("cell index out of range")
)
