package arena

import (
	"context"
	"slices"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/arena/types"
)

// New creates a virtual heap of capacity free cells. Capacity is fixed for
// the heap's lifetime.
func New(capacity uint64) *Heap {
	return &Heap{
		cells: make([]Cell, capacity),
	}
}

// Heap is a fixed-size arena of cells addressed by stable indices. It is
// owned by a single logical thread of control; operations run to completion
// and never interleave.
type Heap struct {
	cells []Cell
}

// Capacity returns the number of cells in the heap.
func (h *Heap) Capacity() uint64 {
	return uint64(len(h.cells))
}

// Cell returns the cell stored at index.
func (h *Heap) Cell(index types.CellIndex) (*Cell, error) {
	if err := h.check(index); err != nil {
		return nil, err
	}
	return &h.cells[index], nil
}

// Viable verifies that every given index addresses an occupied cell. It is
// the precondition gate for every operation mutating the reference graph.
func (h *Heap) Viable(indices ...types.CellIndex) error {
	for _, index := range indices {
		if err := h.check(index); err != nil {
			return err
		}
		if !h.cells[index].Occupied {
			return errors.Wrapf(ErrDataIsFree, "cell %d", index)
		}
	}
	return nil
}

// Free resets the cell at index to the default state and excises the index
// from every other cell's adjacency lists, so a free slot is never
// referenced. Neighbours' reference counters stay untouched; they are
// advisory. Emits a reclamation notification.
func (h *Heap) Free(ctx context.Context, index types.CellIndex) error {
	if err := h.check(index); err != nil {
		return err
	}

	cell := &h.cells[index]
	// Cloned because a self-referencing cell excises its own lists.
	for _, out := range slices.Clone(cell.Outgoing) {
		h.cells[out].dropEdges(index)
	}
	for _, in := range slices.Clone(cell.Incoming) {
		h.cells[in].dropEdges(index)
	}
	*cell = Cell{}

	logger.Get(ctx).Debug("cell freed", zap.Uint64("cell", uint64(index)))
	return nil
}

func (h *Heap) check(index types.CellIndex) error {
	if uint64(index) >= uint64(len(h.cells)) {
		return errors.Wrapf(ErrOutOfRange, "cell %d, capacity %d", index, len(h.cells))
	}
	return nil
}
