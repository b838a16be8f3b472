package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/unkn0wn-root/rle"
	"github.com/unkn0wn-root/rle/codec"
)

// App is a single configured run. It owns no state across runs.
type App struct {
	cfg      *Config
	log      rle.Logger
	payload  codec.Codec[[]byte]
	flushLog func()
}

// New builds an App logging to logW. cfg must come from NewConfig.
func New(logW io.Writer, cfg *Config) (*App, error) {
	log, flush, err := newLogger(cfg, logW)
	if err != nil {
		return nil, err
	}
	log.Debug("logger configured", rle.Fields{
		"backend": cfg.LogBackend,
		"level":   cfg.LogLevel,
		"format":  cfg.LogFormat,
	})

	return &App{
		cfg:      cfg,
		log:      log,
		payload:  codec.LimitCodec[[]byte]{Inner: codec.RLE{}, MaxDecode: cfg.MaxSize},
		flushLog: flush,
	}, nil
}

// Close flushes the logger.
func (a *App) Close() {
	if a.flushLog != nil {
		a.flushLog()
	}
}

// Run reads the input, transforms it and writes the output file. Nothing is
// written unless the whole transform succeeded.
func (a *App) Run(ctx context.Context) (*Report, error) {
	in, err := os.ReadFile(a.cfg.Path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("input read", rle.Fields{"path": a.cfg.Path, "bytes": len(in)})

	out, err := a.transform(in)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dst := a.cfg.OutputPath()
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return nil, err
	}

	r := newReport(a.cfg, in, out)
	a.log.Info("output written", rle.Fields{
		"mode":   r.Mode,
		"path":   dst,
		"bytes":  r.OutputBytes,
		"pairs":  r.Pairs,
		"ratio":  r.Ratio,
		"source": a.cfg.Path,
	})
	if a.cfg.Mode == rle.ModeEncode && r.OutputBytes > r.InputBytes {
		a.log.Warn("encoded output is larger than input", rle.Fields{
			"path":         a.cfg.Path,
			"input_bytes":  r.InputBytes,
			"output_bytes": r.OutputBytes,
		})
	}

	if a.cfg.ReportPath != "" {
		if err := writeReport(a.cfg.ReportPath, r); err != nil {
			return r, fmt.Errorf("report %s: %w", a.cfg.ReportPath, err)
		}
		a.log.Debug("report written", rle.Fields{"path": a.cfg.ReportPath})
	}
	return r, nil
}

func (a *App) transform(in []byte) ([]byte, error) {
	switch a.cfg.Mode {
	case rle.ModeEncode:
		if a.cfg.MaxSize > 0 && len(in) > a.cfg.MaxSize {
			return nil, fmt.Errorf("encode %s: %w: %d > %d", a.cfg.Path, codec.ErrTooLarge, len(in), a.cfg.MaxSize)
		}
		return a.payload.Encode(in)
	case rle.ModeDecode:
		out, err := a.payload.Decode(in)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", a.cfg.Path, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", rle.ErrUnknownMode, a.cfg.Mode)
	}
}
