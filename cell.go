package arena

import (
	"slices"

	"github.com/outofforest/arena/types"
)

// Cell is a single slot of the virtual heap. The zero value is the free
// state: no value, no flags, no edges. A cell never leaves its index;
// reclamation resets it in place.
type Cell struct {
	// Value is meaningful only when HasValue is set.
	Value    types.Value
	HasValue bool

	// Occupied tells whether the slot is live. Rooting a slot forces it
	// live even before a value is assigned, so Occupied does not imply
	// HasValue.
	Occupied bool

	// Root marks the cell as always reachable.
	Root bool

	// Marked is the reachability flag of the most recent mark pass.
	Marked bool

	// ReferenceCount is advisory only. Reclamation is decided by tracing
	// from roots, never by this counter.
	ReferenceCount uint64

	// Outgoing lists cells this cell references.
	Outgoing []types.CellIndex

	// Incoming lists cells referencing this cell.
	Incoming []types.CellIndex
}

// References tells whether the cell references any other cell.
func (c *Cell) References() bool {
	return len(c.Outgoing) > 0
}

// Referenced tells whether any cell references this cell.
func (c *Cell) Referenced() bool {
	return len(c.Incoming) > 0
}

func (c *Cell) addOutgoing(index types.CellIndex) {
	if !slices.Contains(c.Outgoing, index) {
		c.Outgoing = append(c.Outgoing, index)
	}
}

func (c *Cell) addIncoming(index types.CellIndex) {
	if !slices.Contains(c.Incoming, index) {
		c.Incoming = append(c.Incoming, index)
	}
}

func (c *Cell) dropEdges(index types.CellIndex) {
	c.Outgoing = slices.DeleteFunc(c.Outgoing, func(i types.CellIndex) bool {
		return i == index
	})
	c.Incoming = slices.DeleteFunc(c.Incoming, func(i types.CellIndex) bool {
		return i == index
	})
}
