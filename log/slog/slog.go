package slog

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"sort"

	"github.com/unkn0wn-root/rle"
)

var _ rle.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

// New builds a slog-backed logger writing to w. format is "text" or "json".
func New(w io.Writer, level, format string) (Logger, error) {
	var lvl stdslog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return Logger{}, fmt.Errorf("slog: %w", err)
	}

	opts := &stdslog.HandlerOptions{Level: lvl}
	var h stdslog.Handler
	switch format {
	case "json":
		h = stdslog.NewJSONHandler(w, opts)
	case "text", "":
		h = stdslog.NewTextHandler(w, opts)
	default:
		return Logger{}, fmt.Errorf("slog: unknown format %q", format)
	}
	return Logger{L: stdslog.New(h)}, nil
}

func (s Logger) Debug(msg string, f rle.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelDebug, msg, attrs(f)...)
}
func (s Logger) Info(msg string, f rle.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelInfo, msg, attrs(f)...)
}
func (s Logger) Warn(msg string, f rle.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelWarn, msg, attrs(f)...)
}
func (s Logger) Error(msg string, f rle.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelError, msg, attrs(f)...)
}

// attrs sorts by key so text output is stable between runs.
func attrs(f rle.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range keys {
		out = append(out, stdslog.Any(k, f[k]))
	}
	return out
}
