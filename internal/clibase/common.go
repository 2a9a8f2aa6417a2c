// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"zfac-core/solver"
)

// Common holds CLI fields shared by zfac and zfac-sweep.
type Common struct {
	// Solver
	Method    string
	MaxIter   int
	Tolerance float64
	Bracket   string // "lo:hi"
	Guess     float64

	// Output
	Output string // text|json
	Header bool

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the “no-header”
// bool that the caller can use to set Common.Header = !noHeader after parsing.
// bracketDefault differs per tool: zfac narrows around 1, the sweep casts wide.
func Register(fs *flag.FlagSet, c *Common, bracketDefault string) *bool {
	// Solver
	fs.StringVar(&c.Method, "method", "bisect", "root solver: bisect | newton [bisect]")
	fs.IntVar(&c.MaxIter, "max-iter", 0, "iteration cap (0 = method default) [0]")
	fs.Float64Var(&c.Tolerance, "tolerance", 0, "convergence tolerance (0 = method default) [0]")
	fs.StringVar(&c.Bracket, "bracket", bracketDefault, "bisection bracket lo:hi ["+bracketDefault+"]")
	fs.Float64Var(&c.Guess, "guess", solver.DefaultInitialGuess, "newton initial guess [1]")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | json [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// Validate applies shared CLI invariants used by both tools.
func Validate(c *Common) error {
	if _, err := solver.ParseStrategy(c.Method); err != nil {
		return fmt.Errorf("--method: %w", err)
	}
	if c.MaxIter < 0 {
		return errors.New("--max-iter must be ≥ 0")
	}
	if c.Tolerance < 0 {
		return errors.New("--tolerance must be ≥ 0")
	}
	if c.Guess < 0 {
		return errors.New("--guess must be ≥ 0")
	}
	if _, _, err := ParseBracket(c.Bracket); err != nil {
		return err
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}

// ParseBracket parses "lo:hi" into bisection bracket endpoints.
func ParseBracket(s string) (lo, hi float64, err error) {
	left, right, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --bracket %q (want lo:hi)", s)
	}
	lo, err = strconv.ParseFloat(strings.TrimSpace(left), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --bracket %q: %w", s, err)
	}
	hi, err = strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --bracket %q: %w", s, err)
	}
	if !(lo < hi) {
		return 0, 0, fmt.Errorf("invalid --bracket %q: lo must be < hi", s)
	}
	return lo, hi, nil
}

// SolverOptions maps the shared flags onto solver knobs. Zero-valued flags
// keep the per-method defaults.
func SolverOptions(c *Common) (solver.Strategy, solver.Options, error) {
	strategy, err := solver.ParseStrategy(c.Method)
	if err != nil {
		return 0, solver.Options{}, fmt.Errorf("--method: %w", err)
	}
	lo, hi, err := ParseBracket(c.Bracket)
	if err != nil {
		return 0, solver.Options{}, err
	}
	return strategy, solver.Options{
		MaxIter:      c.MaxIter,
		Tolerance:    c.Tolerance,
		BracketLo:    lo,
		BracketHi:    hi,
		InitialGuess: c.Guess,
	}, nil
}
