// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"zfac-core/sutton"

	"zfac/internal/clibase"
)

// DefaultBracket is the zfac bisection bracket; it hugs the near-ideal
// region where single-state queries usually live.
const DefaultBracket = "0.6:1.3"

// Options holds all zfac CLI flags.
type Options struct {
	clibase.Common

	// Reduced state (direct mode). Negative means "not set": Ppr 0 is a
	// legal state, so absence needs a sentinel outside the domain.
	Ppr float64
	Tpr float64

	// Field units (Sutton mode)
	Pressure    string // value with unit suffix, e.g. 3250psia
	Temperature string // value with unit suffix, e.g. 213F
	Gravity     float64
}

// NewFlagSet returns a configured FlagSet with the shared usage banner.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "gas compressibility (z-factor) solver", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] --ppr 2.958 --tpr 1.867\n", name)
		fmt.Fprintf(out, "  %s [options] --pressure 3250psia --temperature 213F --gravity 0.666\n", name)

		fmt.Fprintln(out, "\nState (reduced coordinates):")
		fmt.Fprintln(out, "      --ppr float           Pseudo-reduced pressure [*]")
		fmt.Fprintln(out, "      --tpr float           Pseudo-reduced temperature [*]")

		fmt.Fprintln(out, "\nState (field units):")
		fmt.Fprintln(out, "      --pressure string     Absolute pressure: 3250psia | 221.2atm | 1519.9kPa")
		fmt.Fprintln(out, "      --temperature string  Absolute temperature: 213F | 100.6C | 373.7K")
		fmt.Fprintf(out, "      --gravity float       Gas specific gravity, air = 1 (%g..%g)\n",
			sutton.MinGravity, sutton.MaxGravity)
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for zfac.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "zfac", func(w io.Writer) {
		fmt.Fprintln(w, "Solve the Dranchuk-Abou-Kassem correlation at one state.")
		fmt.Fprintln(w, "\nReduced coordinates:")
		fmt.Fprintln(w, "  zfac --ppr 2.958 --tpr 1.867")
		fmt.Fprintln(w, "\nField units (Sutton pseudo-criticals):")
		fmt.Fprintln(w, "  zfac --pressure 3250psia --temperature 213F --gravity 0.666")
		fmt.Fprintln(w, "\nNewton with a custom guess, JSON output:")
		fmt.Fprintln(w, "  zfac --ppr 5 --tpr 1.5 --method newton --guess 1.1 -o json")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	noHeader := clibase.Register(fs, &o.Common, DefaultBracket)

	// State input
	fs.Float64Var(&o.Ppr, "ppr", -1, "pseudo-reduced pressure [*]")
	fs.Float64Var(&o.Tpr, "tpr", -1, "pseudo-reduced temperature [*]")
	fs.StringVar(&o.Pressure, "pressure", "", "absolute pressure with unit suffix")
	fs.StringVar(&o.Temperature, "temperature", "", "absolute temperature with unit suffix")
	fs.Float64Var(&o.Gravity, "gravity", 0, "gas specific gravity (air = 1)")

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

	// Exactly one input mode.
	usingReduced := o.Ppr >= 0 || o.Tpr >= 0
	usingField := o.Pressure != "" || o.Temperature != "" || o.Gravity != 0
	switch {
	case usingReduced && usingField:
		return o, errors.New("--ppr/--tpr conflict with --pressure/--temperature/--gravity")
	case usingReduced && (o.Ppr < 0 || o.Tpr < 0):
		return o, errors.New("--ppr and --tpr must be supplied together")
	case usingField && (o.Pressure == "" || o.Temperature == "" || o.Gravity == 0):
		return o, errors.New("--pressure, --temperature, and --gravity must be supplied together")
	case !usingReduced && !usingField:
		return o, errors.New("provide --ppr/--tpr or --pressure/--temperature/--gravity")
	}

	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	return o, nil
}
