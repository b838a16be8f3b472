package rle

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput = errors.New("rle: malformed input")
	ErrUnknownMode    = errors.New("rle: unknown mode")
)

// MalformedInputError reports an encoded stream that cannot be split into
// whole pairs. Offset is where the broken pair starts.
type MalformedInputError struct {
	Offset int
	Len    int
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rle: malformed input: pair at offset %d of %d bytes: %v", e.Offset, e.Len, e.Err)
	}
	return fmt.Sprintf("rle: malformed input: pair at offset %d of %d bytes", e.Offset, e.Len)
}

func (e *MalformedInputError) Unwrap() []error {
	errs := make([]error, 0, 2)
	errs = append(errs, ErrMalformedInput)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
