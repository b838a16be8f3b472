package app

import (
	"io"

	"github.com/unkn0wn-root/rle"
	rlelogrus "github.com/unkn0wn-root/rle/log/logrus"
	rleslog "github.com/unkn0wn-root/rle/log/slog"
	rlezap "github.com/unkn0wn-root/rle/log/zap"
)

// newLogger builds the logger for cfg's backend. The returned func flushes
// whatever the backend buffers and is safe to call once on shutdown.
func newLogger(cfg *Config, w io.Writer) (rle.Logger, func(), error) {
	switch cfg.LogBackend {
	case "zap":
		l, err := rlezap.New(w, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return nil, nil, err
		}
		return l, l.Sync, nil
	case "logrus":
		l, err := rlelogrus.New(w, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return nil, nil, err
		}
		return l, func() {}, nil
	default:
		l, err := rleslog.New(w, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return nil, nil, err
		}
		return l, func() {}, nil
	}
}
