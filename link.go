package arena

import (
	"github.com/outofforest/arena/types"
)

// Link records that cell from references cell to. Both endpoints must be
// occupied. The edge is idempotent: linking the same pair again leaves the
// adjacency lists unchanged. The reference counters increment on every call;
// they count link operations, not distinct edges, and are advisory only.
//
// Cycles are permitted. The tracing collector reclaims cyclic garbage that
// a counting collector would leak.
func (h *Heap) Link(from, to types.CellIndex) error {
	if err := h.Viable(from, to); err != nil {
		return err
	}

	h.cells[from].ReferenceCount++
	h.cells[from].addOutgoing(to)

	h.cells[to].ReferenceCount++
	h.cells[to].addIncoming(from)

	return nil
}
