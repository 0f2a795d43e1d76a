package mnemonicode

import "errors"

// Decoding rejects malformed input with one of the errors below. They are
// plain sentinel values: compare with == or errors.Is.
var (
	// ErrUnrecognizedWord reports a token that is not in the dictionary.
	ErrUnrecognizedWord = errors.New("unrecognized word")
	// ErrUnexpectedRemainder reports a trailing value too large for the
	// bytes left over, which usually means the input was truncated.
	ErrUnexpectedRemainder = errors.New("unexpected remainder (possibly truncated input)")
	// ErrUnexpectedRemainderWord reports a 24-bit remainder word outside
	// the final position of a chunk.
	ErrUnexpectedRemainderWord = errors.New("unexpected 24-bit remainder word")
	// ErrDataPastRemainder reports a word following a closed remainder chunk.
	ErrDataPastRemainder = errors.New("unexpected data past 24-bit remainder")
	// ErrInvalidEncoding reports a final chunk digit that no 32-bit chunk
	// value could have produced.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidTemplate reports an encoding template without a single word
	// placeholder. Encoding with such a template could never terminate, so
	// it is rejected before any output is written.
	ErrInvalidTemplate = errors.New("template contains no word placeholder")
)
