package arena

import (
	"github.com/pkg/errors"

	"github.com/outofforest/arena/types"
)

// Allocate stores value in the lowest-index free cell and returns its index.
// Fails with ErrNoFreeMemory when every cell is occupied.
//
// refTo optionally records an outgoing reference to an occupied cell at
// allocation time. Only the outgoing half is recorded; bidirectional
// registration is guaranteed only through Link.
func (h *Heap) Allocate(value types.Value, refTo *types.CellIndex) (types.CellIndex, error) {
	for i := range h.cells {
		if h.cells[i].Occupied {
			continue
		}
		index := types.CellIndex(i)
		if err := h.install(index, value, refTo); err != nil {
			return 0, err
		}
		return index, nil
	}
	return 0, errors.WithStack(ErrNoFreeMemory)
}

// AllocateAt stores value at the caller-chosen position. Fails with
// ErrOccupied when the slot holds a live cell; the caller frees first if
// overwrite is intended, there is no implicit free-then-alloc.
func (h *Heap) AllocateAt(value types.Value, refTo *types.CellIndex, position types.CellIndex) (types.CellIndex, error) {
	if err := h.check(position); err != nil {
		return 0, err
	}
	if h.cells[position].Occupied {
		return 0, errors.Wrapf(ErrOccupied, "cell %d", position)
	}
	if err := h.install(position, value, refTo); err != nil {
		return 0, err
	}
	return position, nil
}

// SetValue assigns value to an already-occupied cell. This is how rooted
// but still valueless cells receive their payload.
func (h *Heap) SetValue(index types.CellIndex, value types.Value) error {
	if err := h.Viable(index); err != nil {
		return err
	}
	h.cells[index].Value = value
	h.cells[index].HasValue = true
	return nil
}

func (h *Heap) install(index types.CellIndex, value types.Value, refTo *types.CellIndex) error {
	cell := Cell{
		Value:    value,
		HasValue: true,
		Occupied: true,
	}
	if refTo != nil {
		// Edges never touch free slots, even the one-sided kind.
		if err := h.Viable(*refTo); err != nil {
			return err
		}
		cell.ReferenceCount = 1
		cell.Outgoing = []types.CellIndex{*refTo}
	}
	h.cells[index] = cell
	return nil
}
