package slog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/rle"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn", "json")
	require.NoError(t, err)

	l.Info("dropped", nil)
	l.Warn("kept", rle.Fields{"path": "a.txt", "bytes": 3})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "kept", rec["msg"])
	require.Equal(t, "a.txt", rec["path"])
	require.EqualValues(t, 3, rec["bytes"])
}

func TestNewTextSortsFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", "text")
	require.NoError(t, err)

	l.Debug("x", rle.Fields{"b": 2, "a": 1})
	out := buf.String()
	require.Less(t, bytes.Index([]byte(out), []byte("a=1")), bytes.Index([]byte(out), []byte("b=2")))
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	require.Error(t, err)
	_, err = New(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}
