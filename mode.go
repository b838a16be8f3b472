package rle

import "fmt"

// Mode selects the direction of a transform. It is decided once from the
// command line and carried as a value from there on.
type Mode uint8

const (
	ModeEncode Mode = iota
	ModeDecode
)

// DecodeFlag is the positional argument that switches the command to decoding.
const DecodeFlag = "d"

// ParseMode maps a positional flag to a Mode. Only DecodeFlag is known;
// encoding is what happens when no flag is given at all.
func ParseMode(flag string) (Mode, error) {
	if flag == DecodeFlag {
		return ModeDecode, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, flag)
}

func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Ext is the extension appended to the input path for the output file.
// Encoding a.txt gives a.txt.rle; decoding that gives a.txt.rle.dat.
func (m Mode) Ext() string {
	if m == ModeDecode {
		return "dat"
	}
	return "rle"
}
