// internal/appshell/shell.go

// Package appshell owns the process-level concerns shared by the binaries:
// signal wiring, argv handoff, and exit-code normalization on cancellation.
// What an empty argv means is each app's decision: zfac prints usage,
// zfac-sweep runs its default grid.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
