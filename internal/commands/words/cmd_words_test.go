package words

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bokysan/mnemonicode"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

func newParser(cmd *Command) *flags.Parser {
	parser := flags.NewNamedParser("mnemonicode", flags.HelpFlag|flags.PrintErrors)
	if _, err := parser.AddCommand("words", "Words", "Print the word dictionary", cmd); err != nil {
		panic(err)
	}
	return parser
}

func Test_Words_FullDictionary(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.Output = &out

	_, err := newParser(cmd).ParseArgs([]string{"words"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, mnemonicode.WordCount)
	require.Equal(t, "academy", lines[0])
	require.Equal(t, "yes", lines[len(lines)-1])
}

func Test_Words_Remainder(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.Output = &out

	_, err := newParser(cmd).ParseArgs([]string{"words", "--remainder"})
	require.NoError(t, err)
	require.Equal(t, "ego\nfax\njet\njob\nrio\nski\nyes\n", out.String())
}

func Test_Words_Verify(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.Output = &out

	_, err := newParser(cmd).ParseArgs([]string{"words", "--verify"})
	require.NoError(t, err)
	require.Zero(t, out.Len(), "verification prints nothing on success")
}
