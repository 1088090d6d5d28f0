package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/arena"
	"github.com/outofforest/arena/types"
)

const help = `Available commands:
    1. --root <cell> <cell>
    2. --unroot
    3. --arb_ref <amount>
    4. --link_ref <from> <to>
    5. --alloc_at <cell>
    6. --state
    7. --populate
    8. --gc
    9. --exit`

// New creates a console driving the heap.
func New(heap *arena.Heap, in io.Reader, out io.Writer) *Console {
	return &Console{
		heap:      heap,
		collector: arena.NewCollector(heap),
		in:        in,
		out:       out,
	}
}

// Console is the interactive driver of the heap: it reads commands,
// dispatches them and reports results. It holds no heap state of its own.
type Console struct {
	heap      *arena.Heap
	collector *arena.Collector
	in        io.Reader
	out       io.Writer
}

// Run reads and executes commands until --exit, end of input or a read
// failure. A read failure is the one fatal path; every heap-level failure is
// reported and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Virtual heap demonstration\n\nRun --help to see a list of commands.")

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		if !c.execute(ctx, Parse(scanner.Text(), c.heap.Capacity(), c.out)) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading command failed")
	}
	return nil
}

func (c *Console) execute(ctx context.Context, cmd Command) bool {
	switch cmd.Kind {
	case CommandHelp:
		fmt.Fprintln(c.out, help)
	case CommandRoot:
		c.heap.SetRoots(cmd.A, cmd.B)
		fmt.Fprintln(c.out, "roots configured")
	case CommandUnroot:
		c.heap.UnrootAll()
		fmt.Fprintln(c.out, "all cells unrooted")
	case CommandArbitraryRef:
		c.arbitraryRefs(uint64(cmd.A))
	case CommandLink:
		if err := c.heap.Link(cmd.A, cmd.B); err != nil {
			fmt.Fprintln(c.out, failureMessage(err))
		} else {
			fmt.Fprintf(c.out, "cell %d now references cell %d\n", cmd.A, cmd.B)
		}
	case CommandAllocAt:
		c.allocateAt(cmd.A)
	case CommandState:
		c.renderState()
	case CommandPopulate:
		c.populate()
	case CommandGC:
		c.collector.Collect(ctx)
		fmt.Fprintln(c.out, "collection finished")
	case CommandExit:
		fmt.Fprintln(c.out, "Exiting")
		return false
	default:
		fmt.Fprintln(c.out, "Unknown command. Run --help for assistance.")
	}
	return true
}

// arbitraryRefs seeds the roots with random values and allocates count cells
// each referencing a randomly chosen root, demonstrating reachable
// allocation.
func (c *Console) arbitraryRefs(count uint64) {
	roots := c.heap.Roots()
	if len(roots) == 0 {
		fmt.Fprintln(c.out, "no roots configured")
		return
	}

	values := make([]types.Value, 0, len(roots))
	for _, root := range roots {
		value := types.Value(rand.Int64N(50) + 1)
		// Roots are occupied by definition, assignment cannot fail.
		_ = c.heap.SetValue(root, value)
		values = append(values, value)
	}

	chosen := rand.IntN(len(roots))
	for range count {
		index, err := c.heap.Allocate(values[chosen]*values[chosen], lo.ToPtr(roots[chosen]))
		if err != nil {
			fmt.Fprintln(c.out, failureMessage(err))
			continue
		}
		fmt.Fprintf(c.out, "cell %d allocated, references root %d\n", index, roots[chosen])
	}
}

func (c *Console) allocateAt(position types.CellIndex) {
	index, err := c.heap.AllocateAt(types.Value(rand.Int64N(50)), nil, position)
	if err != nil {
		fmt.Fprintln(c.out, failureMessage(err))
		return
	}
	fmt.Fprintf(c.out, "cell %d allocated\n", index)
}

// populate fills every free cell with a random unreferenced value. Nothing
// roots them, so the next collection reclaims them all.
func (c *Console) populate() {
	value := types.Value(rand.Int64N(1000))
	for _, info := range c.heap.Snapshot().Cells {
		if !info.Free {
			continue
		}
		if _, err := c.heap.AllocateAt(value, nil, info.Index); err != nil {
			fmt.Fprintln(c.out, failureMessage(err))
			continue
		}
		fmt.Fprintf(c.out, "cell %d populated\n", info.Index)
	}
}

func (c *Console) renderState() {
	snapshot := c.heap.Snapshot()
	for _, info := range snapshot.Cells {
		fmt.Fprintf(c.out, `Cell |%d|:
    1. Has value?: %t
    2. Is free?: %t
    3. Is root?: %t
    4. Ref count: %d
    5. References other?: %t
    6. Referenced by?: %t
    7. Marked: %t
`,
			info.Index,
			info.HasValue,
			info.Free,
			info.Root,
			info.ReferenceCount,
			info.References,
			info.Referenced,
			info.Marked,
		)
	}
	fmt.Fprintf(c.out, "Checksum: %016x\n", snapshot.Checksum)
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, arena.ErrOccupied):
		return "Space is occupied"
	case errors.Is(err, arena.ErrNoFreeMemory):
		return "No free memory available"
	case errors.Is(err, arena.ErrDataIsFree):
		return "The memory was free, not suitable for use"
	case errors.Is(err, arena.ErrOutOfRange):
		return "No such cell"
	default:
		return err.Error()
	}
}
