package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommands(t *testing.T) {
	requireT := require.New(t)
	var out bytes.Buffer

	requireT.Equal(Command{Kind: CommandHelp, A: 0, B: 19}, Parse("--help", 20, &out))
	requireT.Equal(Command{Kind: CommandRoot, A: 3, B: 7}, Parse("--root 3 7", 20, &out))
	requireT.Equal(Command{Kind: CommandUnroot, A: 0, B: 19}, Parse("--unroot", 20, &out))
	requireT.Equal(Command{Kind: CommandArbitraryRef, A: 5, B: 19}, Parse("--arb_ref 5", 20, &out))
	requireT.Equal(Command{Kind: CommandLink, A: 1, B: 2}, Parse("--link_ref 1 2", 20, &out))
	requireT.Equal(Command{Kind: CommandAllocAt, A: 4, B: 19}, Parse("--alloc_at 4", 20, &out))
	requireT.Equal(Command{Kind: CommandState, A: 0, B: 19}, Parse("--state", 20, &out))
	requireT.Equal(Command{Kind: CommandPopulate, A: 0, B: 19}, Parse("--populate", 20, &out))
	requireT.Equal(Command{Kind: CommandGC, A: 0, B: 19}, Parse("--gc", 20, &out))
	requireT.Equal(Command{Kind: CommandExit, A: 0, B: 19}, Parse("--exit", 20, &out))
	requireT.Empty(out.String())
}

func TestParseUnknownCommand(t *testing.T) {
	requireT := require.New(t)
	var out bytes.Buffer

	requireT.Equal(CommandUnknown, Parse("--bogus", 20, &out).Kind)
	requireT.Equal(CommandUnknown, Parse("", 20, &out).Kind)
	requireT.Equal(CommandUnknown, Parse("   ", 20, &out).Kind)
}

func TestParseFallbackOnMalformedIndices(t *testing.T) {
	requireT := require.New(t)
	var out bytes.Buffer

	cmd := Parse("--root abc xyz", 20, &out)
	requireT.Equal(CommandRoot, cmd.Kind)
	requireT.EqualValues(0, cmd.A)
	requireT.EqualValues(19, cmd.B)
	requireT.Contains(out.String(), `could not parse "abc"`)
	requireT.Contains(out.String(), `could not parse "xyz"`)
}

func TestParseTrimsWhitespace(t *testing.T) {
	requireT := require.New(t)
	var out bytes.Buffer

	cmd := Parse("  --link_ref   1    2  ", 20, &out)
	requireT.Equal(Command{Kind: CommandLink, A: 1, B: 2}, cmd)
}
