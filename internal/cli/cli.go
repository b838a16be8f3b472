package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/unkn0wn-root/rle"
	"github.com/unkn0wn-root/rle/internal/app"
)

// ExitError is an error that carries the exit code for the process.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func argError(usage func(), format string, args ...any) *ExitError {
	usage()
	return &ExitError{Code: 1, Message: "invalid arguments: " + fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a validated Config, a
// boolean telling the caller to exit cleanly (help was shown), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("rle", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rle - run-length encode or decode a file.

Usage:
  rle [options] [d] <filepath>

Arguments:
  d
    Decode <filepath>. Without it <filepath> is encoded.
  <filepath>
    Input file. Output goes to <filepath>.rle (encode) or <filepath>.dat (decode).

Options:
`)
		flagSet.PrintDefaults()
	}

	logLevelFlag := flagSet.String("log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logBackendFlag := flagSet.String("log-backend", "slog", "Logging backend. Options: 'slog', 'zap', 'logrus'.")
	maxSizeFlag := flagSet.Int("max-size", 0, "Largest input file accepted, in bytes. 0 is unlimited.")
	reportFlag := flagSet.String("report", "", "Write a run report to this path. Format follows the extension: .json, .msgpack or .cbor.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 1, Message: "invalid arguments: " + err.Error()}
	}

	mode := rle.ModeEncode
	var path string
	switch rest := flagSet.Args(); len(rest) {
	case 0:
		return nil, false, argError(flagSet.Usage, "no argument was specified")
	case 1:
		if rest[0] == rle.DecodeFlag {
			return nil, false, argError(flagSet.Usage, "no filepath was specified")
		}
		path = rest[0]
	case 2:
		m, err := rle.ParseMode(rest[0])
		if err != nil {
			return nil, false, argError(flagSet.Usage, "unknown option %q", rest[0])
		}
		mode, path = m, rest[1]
	default:
		return nil, false, argError(flagSet.Usage, "too many arguments: %s", strings.Join(rest, " "))
	}

	cfg, err := app.NewConfig(app.Config{
		Path:       path,
		Mode:       mode,
		MaxSize:    *maxSizeFlag,
		ReportPath: *reportFlag,
		LogLevel:   strings.ToLower(*logLevelFlag),
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogBackend: strings.ToLower(*logBackendFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: "invalid arguments: " + err.Error()}
	}
	return cfg, false, nil
}
