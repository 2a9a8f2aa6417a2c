// internal/sweepapp/app.go
package sweepapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"zfac-core/solver"
	"zfac-core/sutton"
	"zfac-core/units"

	"zfac/internal/clibase"
	"zfac/internal/cmdutil"
	"zfac/internal/output"
	"zfac/internal/sweepcli"
	"zfac/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := sweepcli.NewFlagSet("zfac-sweep")
	fs.SetOutput(io.Discard)

	// Empty argv is a plain default sweep; only flags can fail here.
	opts, err := sweepcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			sweepcli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "zfac-sweep version %s\n", version.Version)
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

	tK, err := units.ParseTemperature(opts.Temperature)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	// Gravity and temperature are shared by every point; reject them once
	// up front so the workers never see an input error.
	if _, err := sutton.Reduced(opts.From, tK, opts.Gravity); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	pressures := floats.Span(make([]float64, opts.Points), opts.From, opts.To)
	rows := make([]output.Row, len(pressures))

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(pressures) {
		threads = len(pressures)
	}

	// Worker pool over point indices; each worker writes its own slot, so
	// the output order never depends on scheduling.
	jobs := make(chan int, threads*2)
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-parent.Done():
					return
				case idx, ok := <-jobs:
					if !ok {
						return
					}
					pAtm := pressures[idx]
					st, _ := sutton.Reduced(pAtm, tK, opts.Gravity)
					// A failed point keeps its slot; the row's Status says why.
					res, _ := solver.Solve(st.Ppr, st.Tpr, strategy, solverOpts)
					p := pAtm
					rows[idx] = output.Row{
						PressureAtm: &p,
						Ppr:         st.Ppr,
						Tpr:         st.Tpr,
						Method:      strategy,
						Result:      res,
					}
				}
			}
		}()
	}

feed:
	for i := range pressures {
		select {
		case <-parent.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if parent.Err() != nil {
		return 130
	}

	nonOK := 0
	for i := range rows {
		if rows[i].Result.Status != solver.StatusOK {
			nonOK++
		}
	}
	if nonOK > 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "%d of %d points did not converge cleanly", nonOK, len(rows))
	}

	var werr error
	if opts.Output == "json" {
		werr = output.WriteJSON(outw, rows)
	} else {
		werr = output.WriteText(outw, rows, opts.Header, true)
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
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
