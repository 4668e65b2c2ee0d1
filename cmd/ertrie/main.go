package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/revelaction/ertrie/errors"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}
	os.Exit(run(os.Args, ui))
}

func run(args []string, ui UI) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(ui).RunContext(ctx, args); err != nil {
		fprintErr(ui.Err, err)
		return 1
	}
	return 0
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "ertrie: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		_, _ = fmt.Fprintf(w, "hint: %s\n", hint)
	}
}
