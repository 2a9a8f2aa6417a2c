// internal/sweepcli/options.go
package sweepcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"zfac/internal/clibase"
)

// DefaultBracket is the sweep bisection bracket. Sweeps cross from the
// ideal-gas region into high pressure where z climbs well past 1.3, so the
// default casts much wider than zfac's.
const DefaultBracket = "0.2:2.0"

// Options holds all zfac-sweep CLI flags.
type Options struct {
	clibase.Common

	// Sweep grid
	From   float64 // atm
	To     float64 // atm
	Points int

	// Gas and conditions
	Temperature string // value with unit suffix
	Gravity     float64

	// Performance
	Threads int
}

// NewFlagSet returns a configured FlagSet with the shared usage banner.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "z-factor pressure sweep", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options]\n", name)
		fmt.Fprintf(out, "  %s --from 0 --to 500 --points 50 --temperature 0C --gravity 0.9\n", name)

		fmt.Fprintln(out, "\nSweep:")
		fmt.Fprintf(out, "      --from float          Sweep start pressure, atm [%s]\n", def("from"))
		fmt.Fprintf(out, "      --to float            Sweep end pressure, atm [%s]\n", def("to"))
		fmt.Fprintf(out, "      --points int          Number of pressures, ≥ 2 [%s]\n", def("points"))
		fmt.Fprintf(out, "      --temperature string  Absolute temperature with unit [%s]\n", def("temperature"))
		fmt.Fprintf(out, "      --gravity float       Gas specific gravity, air = 1 [%s]\n", def("gravity"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int         Worker threads (0 = all CPUs) [%s]\n", def("threads"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for zfac-sweep.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "zfac-sweep", func(w io.Writer) {
		fmt.Fprintln(w, "Tabulate z over a pressure range at fixed temperature and gravity.")
		fmt.Fprintln(w, "\nDefault sweep (0..500 atm, 50 points, 0C, sg 0.9):")
		fmt.Fprintln(w, "  zfac-sweep")
		fmt.Fprintln(w, "\nDenser grid on 8 workers, JSON:")
		fmt.Fprintln(w, "  zfac-sweep --points 200 --threads 8 -o json")
		fmt.Fprintln(w, "\nHot sour gas in field units:")
		fmt.Fprintln(w, "  zfac-sweep --to 300 --temperature 150F --gravity 0.75")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
// An empty argv is a valid sweep: every flag has a usable default.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	noHeader := clibase.Register(fs, &o.Common, DefaultBracket)

	// Sweep grid
	fs.Float64Var(&o.From, "from", 0, "sweep start pressure, atm [0]")
	fs.Float64Var(&o.To, "to", 500, "sweep end pressure, atm [500]")
	fs.IntVar(&o.Points, "points", 50, "number of pressures [50]")
	fs.StringVar(&o.Temperature, "temperature", "0C", "absolute temperature with unit suffix [0C]")
	fs.Float64Var(&o.Gravity, "gravity", 0.9, "gas specific gravity (air = 1) [0.9]")

	// Performance
	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	o.Header = !*noHeader

	if o.Points < 2 {
		return o, errors.New("--points must be ≥ 2")
	}
	if o.From < 0 {
		return o, errors.New("--from must be ≥ 0")
	}
	if o.To <= o.From {
		return o, errors.New("--to must be > --from")
	}
	if o.Threads < 0 {
		return o, errors.New("--threads must be ≥ 0")
	}

	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	return o, nil
}
