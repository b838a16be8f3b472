package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/rle"
)

func TestRLECodec(t *testing.T) {
	var c Codec[[]byte] = RLE{}

	enc, err := c.Encode([]byte{3, 3, 3})
	require.NoError(t, err)
	require.Equal(t, []byte{3, 3}, enc)

	dec, err := c.Decode(enc)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 3, 3}, dec)

	_, err = c.Decode([]byte{3})
	require.ErrorIs(t, err, rle.ErrMalformedInput)
}

type countingCodec struct {
	Bytes
	decodes int
}

func (c *countingCodec) Decode(b []byte) ([]byte, error) {
	c.decodes++
	return c.Bytes.Decode(b)
}

func TestLimitCodecRejectsOversize(t *testing.T) {
	inner := &countingCodec{}
	c := LimitCodec[[]byte]{Inner: inner, MaxDecode: 4}

	_, err := c.Decode([]byte{1, 2, 3, 4, 5})
	require.True(t, errors.Is(err, ErrTooLarge), "got %v", err)
	require.Zero(t, inner.decodes, "inner codec must not run on oversize input")

	got, err := c.Decode([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, got)
	require.Equal(t, 1, inner.decodes)
}

func TestLimitCodecDisabled(t *testing.T) {
	c := LimitCodec[[]byte]{Inner: RLE{}}
	got, err := c.Decode([]byte{'x', 255, 'x', 255})
	require.NoError(t, err)
	require.Len(t, got, 510)

	enc, err := c.Encode([]byte("xx"))
	require.NoError(t, err)
	require.Equal(t, []byte{'x', 2}, enc)
}

type sample struct {
	Mode  string  `json:"mode" msgpack:"mode" cbor:"mode"`
	Pairs int     `json:"pairs" msgpack:"pairs" cbor:"pairs"`
	Ratio float64 `json:"ratio" msgpack:"ratio" cbor:"ratio"`
}

func TestForExt(t *testing.T) {
	in := sample{Mode: "encode", Pairs: 3, Ratio: 0.5}
	for _, name := range []string{"r.json", "r.msgpack", "r.MP", "r.cbor"} {
		t.Run(name, func(t *testing.T) {
			c, err := ForExt[sample](name)
			require.NoError(t, err)

			b, err := c.Encode(in)
			require.NoError(t, err)
			out, err := c.Decode(b)
			require.NoError(t, err)
			require.Equal(t, in, out)
		})
	}

	_, err := ForExt[sample]("report.yaml")
	require.Error(t, err)
	_, err = ForExt[sample]("report")
	require.Error(t, err)
}

func TestJSONFieldNames(t *testing.T) {
	b, err := JSON[sample]{}.Encode(sample{Mode: "decode", Pairs: 1, Ratio: 2})
	require.NoError(t, err)
	require.JSONEq(t, `{"mode":"decode","pairs":1,"ratio":2}`, string(b))
}

func TestCBORDeterministic(t *testing.T) {
	c, err := NewCBOR[map[string]int](true)
	require.NoError(t, err)

	m := map[string]int{"b": 2, "a": 1, "c": 3}
	first, err := c.Encode(m)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := c.Encode(m)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
