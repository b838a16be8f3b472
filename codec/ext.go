package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ForExt picks a structured codec from a file name's extension:
// .json, .msgpack/.mp or .cbor. CBOR output is deterministic.
func ForExt[V any](name string) (Codec[V], error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		return JSON[V]{}, nil
	case ".msgpack", ".mp":
		return Msgpack[V]{}, nil
	case ".cbor":
		c, err := NewCBOR[V](true)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("rle: no codec for extension %q (want .json, .msgpack or .cbor)", ext)
	}
}
