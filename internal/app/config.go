package app

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/rle"
)

const (
	defaultLogLevel   = "warn"
	defaultLogFormat  = "text"
	defaultLogBackend = "slog"
)

// Config holds everything one run needs.
type Config struct {
	Path string
	Mode rle.Mode

	MaxSize    int    // input bytes; 0 => unlimited
	ReportPath string // "" => no report

	LogLevel   string // debug|info|warn|error; "" => warn
	LogFormat  string // text|json; "" => text
	LogBackend string // slog|zap|logrus; "" => slog
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("no filepath was specified")
	}
	if cfg.Mode != rle.ModeEncode && cfg.Mode != rle.ModeDecode {
		return nil, fmt.Errorf("%w: %s", rle.ErrUnknownMode, cfg.Mode)
	}
	if cfg.MaxSize < 0 {
		return nil, fmt.Errorf("max-size must not be negative, got %d", cfg.MaxSize)
	}

	cfg.LogLevel = coalesce(cfg.LogLevel, defaultLogLevel)
	cfg.LogFormat = coalesce(cfg.LogFormat, defaultLogFormat)
	cfg.LogBackend = coalesce(cfg.LogBackend, defaultLogBackend)

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogBackend {
	case "slog", "zap", "logrus":
	default:
		return nil, fmt.Errorf("invalid log-backend %q: must be 'slog', 'zap', or 'logrus'", cfg.LogBackend)
	}

	return &cfg, nil
}

// OutputPath appends the mode's extension to the input path. The original
// extension is kept: a.txt becomes a.txt.rle, and a.txt.rle.dat on decode.
func (c *Config) OutputPath() string {
	return c.Path + "." + c.Mode.Ext()
}
