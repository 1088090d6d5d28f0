package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/outofforest/arena/types"
)

// CommandKind enumerates the closed set of console operations.
type CommandKind byte

// Console commands.
const (
	CommandUnknown CommandKind = iota
	CommandHelp
	CommandRoot
	CommandUnroot
	CommandArbitraryRef
	CommandLink
	CommandAllocAt
	CommandState
	CommandPopulate
	CommandGC
	CommandExit
)

// Command is one parsed console operation. A and B carry the numeric
// parameters of commands that take them.
type Command struct {
	Kind CommandKind
	A    types.CellIndex
	B    types.CellIndex
}

var commandKinds = map[string]CommandKind{
	"--help":     CommandHelp,
	"--root":     CommandRoot,
	"--unroot":   CommandUnroot,
	"--arb_ref":  CommandArbitraryRef,
	"--link_ref": CommandLink,
	"--alloc_at": CommandAllocAt,
	"--state":    CommandState,
	"--populate": CommandPopulate,
	"--gc":       CommandGC,
	"--exit":     CommandExit,
}

// Parse turns one input line into a Command. Malformed or missing numeric
// parameters fall back to defaults: 0 for the first, the last cell index for
// the second. A warning about the fallback is written to out.
func Parse(line string, capacity uint64, out io.Writer) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CommandUnknown}
	}

	cmd := Command{
		Kind: commandKinds[fields[0]],
		A:    0,
		B:    types.CellIndex(capacity - 1),
	}
	if len(fields) > 1 {
		cmd.A = parseIndex(fields[1], cmd.A, out)
	}
	if len(fields) > 2 {
		cmd.B = parseIndex(fields[2], cmd.B, out)
	}
	return cmd
}

func parseIndex(raw string, fallback types.CellIndex, out io.Writer) types.CellIndex {
	index, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		fmt.Fprintf(out, "Warning: could not parse %q as a cell index, using default %d\n", raw, fallback)
		return fallback
	}
	return types.CellIndex(index)
}
