package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/unkn0wn-root/rle/internal/app"
	"github.com/unkn0wn-root/rle/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, errW io.Writer) int {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return bail(errW, err)
	}
	if shouldExit {
		return 0
	}

	a, err := app.New(errW, cfg)
	if err != nil {
		return bail(errW, err)
	}
	defer a.Close()

	if _, err := a.Run(ctx); err != nil {
		return bail(errW, err)
	}
	return 0
}

func bail(w io.Writer, err error) int {
	fmt.Fprintf(w, "rle: error: %v\n", err)
	var ee *cli.ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}
