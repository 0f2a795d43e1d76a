package decode

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
	if _, err := parser.AddCommand("decode", "Decode", "Decode words back into data", cmd); err != nil {
		panic(err)
	}
	return parser
}

func Test_Decode_Words(t *testing.T) {
	cmd := NewCommand()
	cmd.Input = strings.NewReader("digital-apollo-aroma--rival-artist-rebel")
	var out bytes.Buffer
	cmd.Output = &out

	_, err := newParser(cmd).ParseArgs([]string{"decode"})
	require.NoError(t, err)
	require.Equal(t, []byte{101, 2, 240, 6, 108, 11, 20, 97}, out.Bytes())
}

func Test_Decode_AnySeparators(t *testing.T) {
	cmd := NewCommand()
	cmd.Input = strings.NewReader("consul quiet\nfax\n")
	var out bytes.Buffer
	cmd.Output = &out

	_, err := newParser(cmd).ParseArgs([]string{"decode"})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0xE2, 0x40}, out.Bytes())
}

func Test_Decode_BadWord(t *testing.T) {
	cmd := NewCommand()
	cmd.Input = strings.NewReader("digital-blorb")
	var out bytes.Buffer
	cmd.Output = &out

	_, err := newParser(cmd).ParseArgs([]string{"decode"})
	require.Equal(t, mnemonicode.ErrUnrecognizedWord, err)
	require.Zero(t, out.Len(), "a failed decode must not emit a partial payload")
}

func Test_Decode_Truncated(t *testing.T) {
	cmd := NewCommand()
	cmd.Input = strings.NewReader("digital-arctic")
	var out bytes.Buffer
	cmd.Output = &out

	_, err := newParser(cmd).ParseArgs([]string{"decode"})
	require.Equal(t, mnemonicode.ErrUnexpectedRemainder, err)
	require.Zero(t, out.Len(), "a failed decode must not emit a partial payload")
}

func Test_Decode_EmptyInput(t *testing.T) {
	cmd := NewCommand()
	cmd.Input = strings.NewReader("")
	var out bytes.Buffer
	cmd.Output = &out

	_, err := newParser(cmd).ParseArgs([]string{"decode"})
	require.NoError(t, err)
	require.Zero(t, out.Len())
}
