package mnemonicode

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DecodeString(t *testing.T) {
	data, err := DecodeString(helloWords)
	require.NoError(t, err)
	require.Equal(t, helloWire, data)
}

func Test_Decode_Writer(t *testing.T) {
	var buf bytes.Buffer
	n, err := Decode(&buf, []byte(helloWords))
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, helloWire, buf.Bytes())
}

func Test_Decode_24BitRemainder(t *testing.T) {
	data, err := DecodeString("consul-quiet-fax")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0xE2, 0x40}, data)
}

func Test_Decode_Empty(t *testing.T) {
	for _, input := range []string{"", "---", " \t\n", ".,;:123"} {
		var buf bytes.Buffer
		n, err := Decode(&buf, []byte(input))
		require.NoError(t, err, "input %q", input)
		require.Zero(t, n, "input %q", input)
		require.Zero(t, buf.Len(), "input %q", input)
	}
}

func Test_Decode_SeparatorAgnostic(t *testing.T) {
	for _, input := range []string{
		"digital apollo aroma rival artist rebel",
		"digital,apollo;aroma\nrival_artist+rebel",
		"digital1apollo2aroma3rival4artist5rebel",
		"  digital--apollo....aroma\t\trival artist rebel\n",
	} {
		data, err := DecodeString(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, helloWire, data, "input %q", input)
	}
}

func Test_Decode_CaseSensitive(t *testing.T) {
	_, err := DecodeString("Digital-apollo-aroma")
	require.Equal(t, ErrUnrecognizedWord, err)
}

func Test_Decode_UnrecognizedWord(t *testing.T) {
	_, err := DecodeString("digital-apollo-blorb")
	require.Equal(t, ErrUnrecognizedWord, err)
}

func Test_Decode_UnexpectedRemainderWord(t *testing.T) {
	// Remainder words are only valid in the third slot of a chunk.
	for _, input := range []string{
		"fax",
		"digital-fax",
		"digital-apollo-aroma--fax",
	} {
		_, err := DecodeString(input)
		require.Equal(t, ErrUnexpectedRemainderWord, err, "input %q", input)
	}
}

func Test_Decode_DataPastRemainder(t *testing.T) {
	_, err := DecodeString("consul-quiet-fax-academy")
	require.Equal(t, ErrDataPastRemainder, err)
}

func Test_Decode_RemainderWordPastRemainder(t *testing.T) {
	// Even after a closed chunk a remainder word is reported as such.
	_, err := DecodeString("consul-quiet-fax-jet")
	require.Equal(t, ErrUnexpectedRemainderWord, err)
}

func Test_Decode_InvalidEncoding(t *testing.T) {
	// amen is the first top digit that overflows 32 bits outright.
	_, err := DecodeString("academy-academy-amen")
	require.Equal(t, ErrInvalidEncoding, err)

	// verbal only fits when the low digits leave room for it: natural
	// decodes, its successor neon does not.
	data, err := DecodeString("natural-analyze-verbal")
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, data)

	_, err = DecodeString("neon-analyze-verbal")
	require.Equal(t, ErrInvalidEncoding, err)
}

func Test_Decode_UnexpectedRemainder(t *testing.T) {
	// gallery is index 300, too large for a single byte.
	_, err := DecodeString("gallery")
	require.Equal(t, ErrUnexpectedRemainder, err)

	// arctic is index 41, pushing a two word tail past 16 bits.
	_, err = DecodeString("academy-arctic")
	require.Equal(t, ErrUnexpectedRemainder, err)

	// exact is index 255, the largest value a single byte tail can hold.
	data, err := DecodeString("exact")
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, data)
}

func Test_Decode_FlushedBeforeError(t *testing.T) {
	// Chunks decoded before the offending token stay written.
	var buf bytes.Buffer
	n, err := Decode(&buf, []byte("digital-apollo-aroma--blorb"))
	require.Equal(t, ErrUnrecognizedWord, err)
	require.Equal(t, 4, n)
	require.Equal(t, helloWire[:4], buf.Bytes())
}

func Test_Decode_SinkError(t *testing.T) {
	n, err := Decode(failingWriter{}, []byte(helloWords))
	require.Error(t, err)
	require.Contains(t, err.Error(), "sink is broken")
	require.Zero(t, n)
}

func Test_Decode_RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x6d6e656d))
	for size := 0; size <= 300; size++ {
		data := make([]byte, size)
		rnd.Read(data)

		decoded, err := DecodeString(EncodeToString(data))
		require.NoError(t, err, "size %d", size)
		if size == 0 {
			require.Empty(t, decoded)
		} else {
			require.Equal(t, data, decoded, "size %d", size)
		}
	}
}

func Test_Decode_RoundTripLarge(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	data := make([]byte, 4096)
	rnd.Read(data)

	var words bytes.Buffer
	require.NoError(t, Encode(&words, data))

	var decoded bytes.Buffer
	n, err := Decode(&decoded, words.Bytes())
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, decoded.Bytes())
}
