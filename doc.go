// Package rle implements byte-oriented run-length encoding.
//
// An encoded stream is a flat sequence of two-byte pairs with no header:
//
//	value(1) | count(1)
//
// Each pair stands for count consecutive copies of value. Counts run from 1
// to 255; a longer run is split into several pairs carrying the same value.
//
// Encode is total. Decode rejects a stream whose last pair is missing its
// count byte with a *MalformedInputError (errors.Is ErrMalformedInput).
//
//	enc := rle.Encode([]byte("aaab")) // "a\x03b\x01"
//	raw, err := rle.Decode(enc)       // "aaab", nil
package rle
