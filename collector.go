package arena

import (
	"context"

	"github.com/outofforest/logger"
	"go.uber.org/zap"

	"github.com/outofforest/arena/types"
)

// Phase enumerates collector states.
type Phase byte

// Collector phases.
const (
	PhaseIdle Phase = iota
	PhaseMarking
	PhaseSweeping
)

// NewCollector creates a tracing collector for the heap.
func NewCollector(heap *Heap) *Collector {
	return &Collector{
		heap: heap,
	}
}

// Collector reclaims unreachable cells by marking everything reachable from
// the roots and sweeping the rest. Reference counters play no part in the
// decision.
type Collector struct {
	heap  *Heap
	phase Phase
}

// Phase returns the current collector phase. Outside a running collection
// it is always PhaseIdle.
func (c *Collector) Phase() Phase {
	return c.phase
}

// Mark flips the mark bit of every cell reachable from a root. Stale marks
// of the previous cycle are cleared first; root cells stay marked
// unconditionally.
func (c *Collector) Mark() {
	cells := c.heap.cells
	for i := range cells {
		cells[i].Marked = cells[i].Root
	}

	// FIFO worklist seeded with the roots' outgoing sets. The mark bit
	// doubles as the visited set, so cycles cannot re-expand forever.
	var worklist []types.CellIndex
	for _, root := range c.heap.Roots() {
		worklist = append(worklist, cells[root].Outgoing...)
	}

	for len(worklist) > 0 {
		index := worklist[0]
		worklist = worklist[1:]

		cell := &cells[index]
		if cell.Marked {
			continue
		}
		cell.Marked = true
		worklist = append(worklist, cell.Outgoing...)
	}
}

// Sweep frees every unmarked cell and returns the number of cells
// reclaimed. Marked cells are left untouched, including their mark bit; the
// next mark pass owns the reset.
func (c *Collector) Sweep(ctx context.Context) uint64 {
	var freed uint64
	for i := range c.heap.cells {
		if c.heap.cells[i].Marked {
			continue
		}
		occupied := c.heap.cells[i].Occupied
		// Index is always valid here, the error path cannot trigger.
		_ = c.heap.Free(ctx, types.CellIndex(i))
		if occupied {
			freed++
		}
	}
	return freed
}

// Collect runs a full collection cycle: mark, then sweep. It is synchronous
// and atomic from the caller's point of view; no other heap operation can
// observe the intermediate state.
func (c *Collector) Collect(ctx context.Context) {
	c.phase = PhaseMarking
	c.Mark()

	c.phase = PhaseSweeping
	freed := c.Sweep(ctx)

	c.phase = PhaseIdle
	logger.Get(ctx).Info("collection finished", zap.Uint64("freed", freed))
}
