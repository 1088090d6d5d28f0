package types

type (
	// CellIndex is the address of a single cell of the virtual heap.
	// Indices are stable: freeing a cell resets its state but never moves it.
	CellIndex uint64

	// Value is the scalar payload stored in an occupied cell.
	Value int64
)
