package arena

import (
	"github.com/cespare/xxhash"
	"github.com/outofforest/photon"

	"github.com/outofforest/arena/types"
)

// CellInfo describes the observable state of a single cell.
type CellInfo struct {
	Index          types.CellIndex
	ReferenceCount uint64
	HasValue       bool
	Free           bool
	Root           bool
	References     bool
	Referenced     bool
	Marked         bool
}

// Snapshot describes the observable state of the whole heap at one point in
// time. Checksum is an xxhash digest of the packed descriptors, giving two
// heap states a cheap identity.
type Snapshot struct {
	Cells    []CellInfo
	Checksum uint64
}

// Snapshot captures per-cell descriptors for display and inspection.
func (h *Heap) Snapshot() Snapshot {
	digest := xxhash.New()
	infos := make([]CellInfo, 0, len(h.cells))
	for i := range h.cells {
		cell := &h.cells[i]
		info := CellInfo{
			Index:          types.CellIndex(i),
			ReferenceCount: cell.ReferenceCount,
			HasValue:       cell.HasValue,
			Free:           !cell.Occupied,
			Root:           cell.Root,
			References:     cell.References(),
			Referenced:     cell.Referenced(),
			Marked:         cell.Marked,
		}
		_, _ = digest.Write(photon.NewFromValue(&info).B)
		infos = append(infos, info)
	}
	return Snapshot{
		Cells:    infos,
		Checksum: digest.Sum64(),
	}
}
