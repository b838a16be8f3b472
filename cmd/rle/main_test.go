package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRoundTripThroughFiles(t *testing.T) {
	src := filepath.Join(t.TempDir(), "three.bin")
	require.NoError(t, os.WriteFile(src, []byte{3, 3, 3}, 0o644))

	var errW bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{src}, &errW), errW.String())
	require.Equal(t, 0, run(context.Background(), []string{"d", src + ".rle"}, &errW), errW.String())
	require.Empty(t, errW.String())

	got, err := os.ReadFile(src + ".rle.dat")
	require.NoError(t, err)
	require.Equal(t, []byte{3, 3, 3}, got)
}

func TestRunFailuresExitOne(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.rle")
	require.NoError(t, os.WriteFile(bad, []byte{'v'}, 0o644))

	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"no args", nil, "no argument was specified"},
		{"decode without path", []string{"d"}, "no filepath was specified"},
		{"missing file", []string{filepath.Join(dir, "missing")}, "no such file"},
		{"malformed", []string{"d", bad}, "malformed input"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var errW bytes.Buffer
			require.Equal(t, 1, run(context.Background(), tc.args, &errW))
			require.Contains(t, errW.String(), "rle: error: ")
			require.Contains(t, errW.String(), tc.msg)
		})
	}
}

func TestRunHelpExitsZero(t *testing.T) {
	var errW bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"-h"}, &errW))
	require.Contains(t, errW.String(), "Usage:")
}
