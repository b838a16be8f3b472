package rle

import "github.com/unkn0wn-root/rle/internal/wire"

// MaxRun is the longest run a single pair can describe.
const MaxRun = wire.MaxRun

// Encode returns the run-length encoding of src as value/count pairs.
// The result is newly allocated and never nil.
func Encode(src []byte) []byte {
	if len(src) == 0 {
		return []byte{}
	}

	out := make([]byte, 0, wire.PairSize)
	value, count := src[0], byte(1)
	for _, b := range src[1:] {
		if b == value && count < wire.MaxRun {
			count++
			continue
		}
		out = wire.AppendPair(out, value, count)
		value, count = b, 1
	}
	// the last run never sees a differing byte
	return wire.AppendPair(out, value, count)
}

// Decode expands value/count pairs back into raw bytes. A zero count is
// allowed and contributes nothing. An odd-length src fails with
// *MalformedInputError and no partial output.
func Decode(src []byte) ([]byte, error) {
	n, err := DecodedLen(src)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, n)
	for off := 0; off < len(src); off += wire.PairSize {
		value, count, err := wire.ReadPair(src, off)
		if err != nil {
			return nil, &MalformedInputError{Offset: off, Len: len(src), Err: err}
		}
		for range count {
			out = append(out, value)
		}
	}
	return out, nil
}

// DecodedLen returns the size Decode would produce for src without
// expanding it.
func DecodedLen(src []byte) (int, error) {
	n := 0
	for off := 0; off < len(src); off += wire.PairSize {
		_, count, err := wire.ReadPair(src, off)
		if err != nil {
			return 0, &MalformedInputError{Offset: off, Len: len(src), Err: err}
		}
		n += int(count)
	}
	return n, nil
}

// Pairs returns the number of whole pairs in an encoded stream.
func Pairs(encoded []byte) int { return wire.Pairs(encoded) }
