package mnemonicode

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// DefaultTemplate groups words in triples separated by single dashes and
// puts a double dash before every fourth word, marking chunk boundaries.
const DefaultTemplate = "x-x-x--"

// WordsRequired returns the number of words needed to encode n bytes of
// data: (n+1)*3/4, rounding down. A full 4-byte chunk always takes exactly
// three words; the +1 rounds a trailing partial chunk up to the word slots
// it occupies.
func WordsRequired(n int) int {
	return (n + 1) * 3 / 4
}

// Encode writes the mnemonic representation of src to dst using
// DefaultTemplate. Encoding itself cannot fail; only sink errors are
// returned. Empty input writes nothing.
func Encode(dst io.Writer, src []byte) error {
	return EncodeWithTemplate(dst, src, DefaultTemplate)
}

// EncodeWithTemplate writes the mnemonic representation of src to dst,
// laid out according to template: every maximal run of ASCII letters stands
// for the next encoded word, every other byte is copied to dst verbatim.
// The template repeats from the start until all words are written; output
// stops right after the last word, so trailing separators are not emitted.
// A template without a single letter is rejected with ErrInvalidTemplate.
func EncodeWithTemplate(dst io.Writer, src []byte, template string) error {
	if !containsASCIIAlpha(template) {
		return ErrInvalidTemplate
	}

	words := WordsRequired(len(src))
	i := 0 // cursor within template
	for n := 0; n < words; {
		j := i
		for j < len(template) && !isASCIIAlpha(template[j]) {
			j++
		}
		if j > i {
			if _, err := io.WriteString(dst, template[i:j]); err != nil {
				return errors.WithStack(err)
			}
			i = j
		}
		if i == len(template) {
			i = 0
			continue
		}
		for i < len(template) && isASCIIAlpha(template[i]) {
			i++
		}
		if _, err := io.WriteString(dst, encodeWord(src, n)); err != nil {
			return errors.WithStack(err)
		}
		n++
	}

	return nil
}

// EncodeToString returns the mnemonic representation of src using
// DefaultTemplate.
func EncodeToString(src []byte) string {
	var sb strings.Builder
	// Words are at most seven letters; nine bytes per word covers the
	// separators as well.
	sb.Grow(WordsRequired(len(src)) * 9)
	if err := Encode(&sb, src); err != nil {
		// The default template is valid and strings.Builder never fails.
		panic(err)
	}
	return sb.String()
}

// encodeWord returns the nth word of the encoding of src.
func encodeWord(src []byte, n int) string {
	offset := n / 3 * 4
	chunk := src[offset:]
	if len(chunk) > 4 {
		chunk = chunk[:4]
	}

	var x uint32
	for i, b := range chunk {
		x |= uint32(b) << (8 * uint(i))
	}

	var extra uint32
	switch n % 3 {
	case 2:
		// Top digit of the chunk. A terminal chunk of exactly three
		// bytes is tagged with one of the remainder words instead.
		if len(chunk) == 3 {
			extra = BaseWords
		}
		x /= BaseWords * BaseWords
	case 1:
		x /= BaseWords
	}

	return wordList[x%BaseWords+extra]
}

// isASCIIAlpha reports whether b is an ASCII letter. Only ASCII letters are
// word material; every other byte acts as a separator.
func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func containsASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if isASCIIAlpha(s[i]) {
			return true
		}
	}
	return false
}
