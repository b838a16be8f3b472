package zap

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/rle"
)

var _ rle.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New builds a zap logger writing to w. format "json" uses the production
// JSON encoder, "text" the console encoder.
func New(w io.Writer, level, format string) (ZapLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return ZapLogger{}, fmt.Errorf("zap: %w", err)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch format {
	case "json":
		enc = zapcore.NewJSONEncoder(ec)
	case "text", "":
		enc = zapcore.NewConsoleEncoder(ec)
	default:
		return ZapLogger{}, fmt.Errorf("zap: unknown format %q", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return ZapLogger{L: zap.New(core)}, nil
}

func (z ZapLogger) Debug(msg string, f rle.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f rle.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f rle.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f rle.Fields) { z.L.Error(msg, zf(f)...) }

// Sync flushes buffered entries. Errors from syncing a terminal are expected
// and not interesting to callers.
func (z ZapLogger) Sync() { _ = z.L.Sync() }

func zf(f rle.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
