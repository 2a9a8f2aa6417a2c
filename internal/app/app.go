// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"zfac-core/dak"
	"zfac-core/solver"
	"zfac-core/sutton"
	"zfac-core/units"

	"zfac/internal/cli"
	"zfac/internal/clibase"
	"zfac/internal/cmdutil"
	"zfac/internal/output"
	"zfac/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("zfac")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); output.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw)
			if e := outw.Flush(); output.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); output.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "zfac version %s\n", version.Version)
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	strategy, solverOpts, err := clibase.SolverOptions(&opts.Common)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// Resolve the reduced state from whichever input mode was used.
	row := output.Row{Method: strategy}
	if opts.Pressure != "" {
		pAtm, err := units.ParsePressure(opts.Pressure)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		tK, err := units.ParseTemperature(opts.Temperature)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		st, err := sutton.Reduced(pAtm, tK, opts.Gravity)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		row.PressureAtm = &pAtm
		row.Ppr, row.Tpr = st.Ppr, st.Tpr
	} else {
		row.Ppr, row.Tpr = opts.Ppr, opts.Tpr
	}

	if st := (dak.State{Ppr: row.Ppr, Tpr: row.Tpr}); !st.InRange() {
		cmdutil.Warnf(stderr, opts.Quiet,
			"state Ppr=%.4g Tpr=%.4g outside the fitted window Ppr %g..%g Tpr %g..%g",
			row.Ppr, row.Tpr, dak.MinPpr, dak.MaxPpr, dak.MinTpr, dak.MaxTpr)
	}

	res, err := solver.Solve(row.Ppr, row.Tpr, strategy, solverOpts)
	row.Result = res
	switch {
	case err == nil:
	case errors.Is(err, solver.ErrMaxIterations):
		// Non-fatal: the best-effort result still prints below.
		cmdutil.Warnf(stderr, opts.Quiet, "%v", err)
	case errors.Is(err, solver.ErrBracketInvalid),
		errors.Is(err, solver.ErrDerivativeNearZero),
		errors.Is(err, solver.ErrNumericFault):
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	default:
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	rows := []output.Row{row}
	var werr error
	if opts.Output == "json" {
		werr = output.WriteJSON(outw, rows)
	} else {
		werr = output.WriteText(outw, rows, opts.Header, row.PressureAtm != nil)
	}
	if werr != nil {
		if output.IsBrokenPipe(werr) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); output.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	if parent.Err() != nil {
		return 130
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
