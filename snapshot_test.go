package arena

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/arena/types"
)

func TestSnapshotDescriptors(t *testing.T) {
	requireT := require.New(t)
	h := New(3)

	h.SetRoots(0, 0)
	index, err := h.Allocate(42, nil)
	requireT.NoError(err)
	requireT.EqualValues(1, index)
	requireT.NoError(h.Link(0, 1))

	snapshot := h.Snapshot()
	requireT.Len(snapshot.Cells, 3)

	requireT.Equal(CellInfo{
		Index:          0,
		ReferenceCount: 1,
		HasValue:       false,
		Free:           false,
		Root:           true,
		References:     true,
		Referenced:     false,
		Marked:         true,
	}, snapshot.Cells[0])

	requireT.Equal(CellInfo{
		Index:          1,
		ReferenceCount: 1,
		HasValue:       true,
		Free:           false,
		Root:           false,
		References:     false,
		Referenced:     true,
		Marked:         false,
	}, snapshot.Cells[1])

	requireT.Equal(CellInfo{
		Index: 2,
		Free:  true,
	}, snapshot.Cells[2])
}

func TestSnapshotChecksum(t *testing.T) {
	requireT := require.New(t)
	h := New(5)

	base := h.Snapshot().Checksum
	requireT.Equal(base, h.Snapshot().Checksum)

	other := New(5)
	requireT.Equal(base, other.Snapshot().Checksum)

	_, err := h.Allocate(1, nil)
	requireT.NoError(err)
	requireT.NotEqual(base, h.Snapshot().Checksum)
}

func TestSnapshotChecksumIgnoresValuePayload(t *testing.T) {
	requireT := require.New(t)

	// The checksum digests observable descriptors, not payloads: two heaps
	// with the same shape but different values hash the same.
	a := New(3)
	b := New(3)
	_, err := a.Allocate(1, nil)
	requireT.NoError(err)
	_, err = b.Allocate(2, nil)
	requireT.NoError(err)

	requireT.Equal(a.Snapshot().Checksum, b.Snapshot().Checksum)
}

func TestSnapshotAfterCollection(t *testing.T) {
	requireT := require.New(t)
	h := New(4)
	c := NewCollector(h)

	h.SetRoots(0, 1)
	index, err := h.Allocate(5, lo.ToPtr(types.CellIndex(0)))
	requireT.NoError(err)
	requireT.EqualValues(2, index)

	// The allocation-time reference is one-sided, the cell points at the
	// root but nothing reachable points at the cell.
	c.Collect(testCtx())

	snapshot := h.Snapshot()
	requireT.True(snapshot.Cells[2].Free)
	requireT.False(snapshot.Cells[0].Free)
	requireT.True(snapshot.Cells[0].Marked)
}
