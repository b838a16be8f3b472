package codec

import "github.com/unkn0wn-root/rle"

// RLE is a Codec over raw byte slices using run-length encoding.
// The zero value is ready to use.
type RLE struct{}

var _ Codec[[]byte] = RLE{}

func (RLE) Encode(b []byte) ([]byte, error) { return rle.Encode(b), nil }
func (RLE) Decode(b []byte) ([]byte, error) { return rle.Decode(b) }
