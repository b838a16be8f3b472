package wire

import "errors"

// Pair: value(1) | count(1)
//
// The value byte always comes first. Encoder and decoder both go through
// AppendPair/ReadPair so neither can drift from this order on its own.
const (
	ValueOffset = 0
	CountOffset = 1
	PairSize    = 2

	// MaxRun is the largest count a single pair can carry.
	MaxRun = 0xFF
)

var ErrTruncated = errors.New("rle: truncated pair")

func AppendPair(dst []byte, value, count byte) []byte {
	var p [PairSize]byte
	p[ValueOffset] = value
	p[CountOffset] = count
	return append(dst, p[:]...)
}

// ReadPair returns the pair starting at off. Both bytes are bounds checked
// before they are read; a pair cut short by the end of b is ErrTruncated.
func ReadPair(b []byte, off int) (value, count byte, err error) {
	if off < 0 || off+ValueOffset >= len(b) {
		return 0, 0, ErrTruncated
	}
	value = b[off+ValueOffset]

	if off+CountOffset >= len(b) {
		return 0, 0, ErrTruncated
	}
	count = b[off+CountOffset]

	return value, count, nil
}

// Pairs reports how many whole pairs b holds.
func Pairs(b []byte) int { return len(b) / PairSize }

// Aligned reports whether b is made of whole pairs only.
func Aligned(b []byte) bool { return len(b)%PairSize == 0 }
