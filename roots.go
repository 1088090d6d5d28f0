package arena

import (
	"github.com/outofforest/arena/types"
)

// Fallback root pair used when a requested pair is out of range.
const (
	fallbackRootA types.CellIndex = 0
	fallbackRootB types.CellIndex = 1
)

// SetRoots designates cells a and b as collection roots. Roots are forced
// occupied (live anchors, valueless until assigned) and marked immediately,
// they never wait for a mark pass. If either index is out of range the
// requested pair is discarded and the fallback pair {0, 1} is rooted
// instead.
func (h *Heap) SetRoots(a, b types.CellIndex) {
	if h.check(a) != nil || h.check(b) != nil {
		a, b = fallbackRootA, fallbackRootB
	}
	h.root(a)
	h.root(b)
}

// UnrootAll clears root status from every rooted cell. Mark bits stay as
// they are; they belong to the collection cycle and are reset wholesale by
// the next mark pass.
func (h *Heap) UnrootAll() {
	for i := range h.cells {
		h.cells[i].Root = false
	}
}

// Roots returns the indices of all rooted cells in heap order.
func (h *Heap) Roots() []types.CellIndex {
	roots := make([]types.CellIndex, 0, len(h.cells))
	for i := range h.cells {
		if h.cells[i].Root {
			roots = append(roots, types.CellIndex(i))
		}
	}
	return roots
}

func (h *Heap) root(index types.CellIndex) {
	cell := &h.cells[index]
	cell.Root = true
	cell.Occupied = true
	cell.Marked = true
}
