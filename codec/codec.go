// Package codec holds the Codec abstraction and its implementations: the
// run-length codec used for file payloads, a size limiter, and the
// structured codecs (JSON, MessagePack, CBOR) used for run reports.
package codec

import "errors"

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var ErrTooLarge = errors.New("rle: payload too large")
