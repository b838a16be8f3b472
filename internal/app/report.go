package app

import (
	"fmt"
	"os"

	"github.com/unkn0wn-root/rle"
	"github.com/unkn0wn-root/rle/codec"
)

// Report describes one finished run.
type Report struct {
	Mode        string  `json:"mode" msgpack:"mode" cbor:"mode"`
	Input       string  `json:"input" msgpack:"input" cbor:"input"`
	Output      string  `json:"output" msgpack:"output" cbor:"output"`
	InputBytes  int     `json:"input_bytes" msgpack:"input_bytes" cbor:"input_bytes"`
	OutputBytes int     `json:"output_bytes" msgpack:"output_bytes" cbor:"output_bytes"`
	Pairs       int     `json:"pairs" msgpack:"pairs" cbor:"pairs"`
	Ratio       float64 `json:"ratio" msgpack:"ratio" cbor:"ratio"`
}

func newReport(cfg *Config, in, out []byte) *Report {
	r := &Report{
		Mode:        cfg.Mode.String(),
		Input:       cfg.Path,
		Output:      cfg.OutputPath(),
		InputBytes:  len(in),
		OutputBytes: len(out),
	}
	// pairs always live on the encoded side
	if cfg.Mode == rle.ModeEncode {
		r.Pairs = rle.Pairs(out)
	} else {
		r.Pairs = rle.Pairs(in)
	}
	if len(in) > 0 {
		r.Ratio = float64(len(out)) / float64(len(in))
	}
	return r
}

// writeReport encodes r with the codec matching path's extension.
func writeReport(path string, r *Report) error {
	c, err := codec.ForExt[Report](path)
	if err != nil {
		return err
	}
	b, err := c.Encode(*r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}
