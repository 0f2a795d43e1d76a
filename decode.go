package mnemonicode

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const (
	// maxChunkDigit is the first top-digit index that can never appear in
	// a full chunk: 1625*1626^2 already exceeds 2^32-1.
	maxChunkDigit = 1625
	// maxChunkCarry is the largest two-digit accumulator that still fits a
	// 32-bit chunk when the top digit is maxChunkDigit-1.
	maxChunkCarry = 1312671
)

// Decode reconstructs the bytes encoded in the mnemonic text src and writes
// them to dst, returning the number of bytes written. Words may be separated
// by any run of non-letter bytes; the separators carry no information.
// Word lookup is case-sensitive. The first invalid token aborts the whole
// decode with one of the sentinel errors of this package; sink failures are
// passed through with stack context.
func Decode(dst io.Writer, src []byte) (int, error) {
	var (
		x       uint32 // accumulator of the chunk being decoded
		offset  int    // decoded bytes, offset%4 is the position in the chunk
		written int
		buf     [4]byte
	)

	for start := 0; start < len(src); {
		for start < len(src) && !isASCIIAlpha(src[start]) {
			start++
		}
		end := start
		for end < len(src) && isASCIIAlpha(src[end]) {
			end++
		}
		if start == end {
			break
		}

		idx, ok := wordIndex[string(src[start:end])]
		if !ok {
			return written, ErrUnrecognizedWord
		}
		start = end

		if err := decodeWordIndex(idx, &x, &offset); err != nil {
			return written, err
		}
		if offset%4 == 0 {
			// Chunk complete, flush it.
			binary.LittleEndian.PutUint32(buf[:], x)
			if _, err := dst.Write(buf[:]); err != nil {
				return written, errors.WithStack(err)
			}
			written += 4
			x = 0
		}
	}

	remainder := offset % 4
	if remainder > 0 {
		binary.LittleEndian.PutUint32(buf[:], x)
		if _, err := dst.Write(buf[:remainder]); err != nil {
			return written, errors.WithStack(err)
		}
		written += remainder
	}

	return written, decodeFinish(x, remainder)
}

// DecodeString reconstructs the bytes encoded in the mnemonic text src.
func DecodeString(src string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decode(&buf, []byte(src)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeWordIndex folds one word index into the running chunk accumulator.
func decodeWordIndex(idx uint32, x *uint32, offset *int) error {
	if idx >= BaseWords && *offset%4 != 2 {
		return ErrUnexpectedRemainderWord
	}

	switch *offset % 4 {
	case 3:
		// A remainder word closed this chunk; nothing may follow it.
		return ErrDataPastRemainder
	case 2:
		if idx >= BaseWords {
			// 24-bit tail: the chunk ends after three bytes.
			*x += (idx - BaseWords) * BaseWords * BaseWords
			*offset++
			return nil
		}
		if idx >= maxChunkDigit || (idx == maxChunkDigit-1 && *x > maxChunkCarry) {
			return ErrInvalidEncoding
		}
		*x += idx * BaseWords * BaseWords
		*offset += 2
	case 1:
		*x += idx * BaseWords
		*offset++
	default:
		*x = idx
		*offset++
	}

	return nil
}

// decodeFinish validates the trailing partial chunk. The bytes have already
// been flushed; an accumulator beyond their range means the input most
// likely lost its final words. A three byte tail needs no check: its value
// was fully resolved at the remainder-word step.
func decodeFinish(x uint32, remainder int) error {
	if (remainder == 2 && x > 0xFFFF) || (remainder == 1 && x > 0xFF) {
		return ErrUnexpectedRemainder
	}
	return nil
}
