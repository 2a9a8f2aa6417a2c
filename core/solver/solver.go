// core/solver/solver.go
//
// Root solver for the DAK compressibility residual. One entry point, Solve,
// runs either bracketed bisection or Newton iteration over the same residual
// and reports through one result/status contract, so callers choose a
// strategy with a parameter instead of calling different code paths.
//
// Solves are stateless: no package-level mutable state, so any number may
// run concurrently. Failures come back as a Status inside the Result paired
// with a matching sentinel error; nothing panics across this boundary.
package solver

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"zfac-core/dak"
)

// Strategy selects the root-finding method.
type Strategy uint8

const (
	Bisection Strategy = iota
	Newton
)

func (s Strategy) String() string {
	switch s {
	case Bisection:
		return "bisect"
	case Newton:
		return "newton"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps CLI spellings onto a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bisect", "bisection":
		return Bisection, nil
	case "newton", "newton-raphson":
		return Newton, nil
	}
	return 0, fmt.Errorf("unknown method %q (want bisect or newton)", s)
}

// Status classifies the outcome of a solve.
type Status uint8

const (
	StatusOK Status = iota
	// StatusMaxIterations: tolerance not met within the iteration cap. The
	// Result still carries the last iterate as a best-effort answer.
	StatusMaxIterations
	// StatusBracketInvalid: the bisection bracket does not straddle a sign
	// change, so no root is guaranteed inside it.
	StatusBracketInvalid
	// StatusDerivativeNearZero: the Newton derivative magnitude fell below
	// the division guard. Distinct from a numeric fault: nothing was divided.
	StatusDerivativeNearZero
	// StatusNumericFault: the residual or derivative evaluated to NaN. The
	// Result carries no usable Z.
	StatusNumericFault
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMaxIterations:
		return "max-iterations"
	case StatusBracketInvalid:
		return "bracket-invalid"
	case StatusDerivativeNearZero:
		return "derivative-near-zero"
	case StatusNumericFault:
		return "numeric-fault"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Sentinel errors matching the non-OK statuses; Solve pairs each failing
// Result with the corresponding error so callers can use errors.Is.
var (
	ErrMaxIterations      = errors.New("no convergence within the iteration cap")
	ErrBracketInvalid     = errors.New("bracket does not straddle a sign change")
	ErrDerivativeNearZero = errors.New("derivative magnitude below guard threshold")
	ErrNumericFault       = errors.New("residual evaluated to NaN")
)

// Defaults applied by Solve when the corresponding Options field is zero.
const (
	DefaultMaxIter      = 100
	DefaultBisectTol    = 2e-6 // on the bracket width |b−a|
	DefaultNewtonTol    = 1e-6 // on the update magnitude |z−zn|
	DefaultBracketLo    = 0.6
	DefaultBracketHi    = 1.3
	DefaultInitialGuess = 1.0
)

// Options tunes a solve. The zero value selects every documented default.
type Options struct {
	MaxIter      int     // 0 = DefaultMaxIter
	Tolerance    float64 // 0 = strategy default (DefaultBisectTol / DefaultNewtonTol)
	BracketLo    float64 // bisection; both bounds zero = [DefaultBracketLo, DefaultBracketHi]
	BracketHi    float64
	InitialGuess float64 // Newton; 0 = DefaultInitialGuess
}

func (o Options) withDefaults(strategy Strategy) (Options, error) {
	if o.MaxIter < 0 {
		return o, errors.New("solve: max iterations must be ≥ 0")
	}
	if o.MaxIter == 0 {
		o.MaxIter = DefaultMaxIter
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance < 0 {
		return o, errors.New("solve: tolerance must be ≥ 0")
	}
	if o.Tolerance == 0 {
		if strategy == Bisection {
			o.Tolerance = DefaultBisectTol
		} else {
			o.Tolerance = DefaultNewtonTol
		}
	}
	if o.BracketLo == 0 && o.BracketHi == 0 {
		o.BracketLo, o.BracketHi = DefaultBracketLo, DefaultBracketHi
	}
	if strategy == Bisection && !(o.BracketLo < o.BracketHi) {
		return o, fmt.Errorf("solve: bracket [%g, %g] must satisfy lo < hi", o.BracketLo, o.BracketHi)
	}
	if o.InitialGuess == 0 {
		o.InitialGuess = DefaultInitialGuess
	}
	if strategy == Newton && (math.IsNaN(o.InitialGuess) || o.InitialGuess < 0) {
		return o, errors.New("solve: initial guess must be > 0")
	}
	return o, nil
}

// Result is the outcome of one solve. On StatusMaxIterations, Z and
// Convergence hold the last iterate (usable, caller warned). On
// StatusNumericFault both are NaN. On input errors the Result is zero and
// only the returned error is meaningful.
type Result struct {
	Z           float64
	Iterations  int
	Convergence float64 // final |b−a| (bisection) or |z−zn| (Newton)
	Status      Status
}

// Solve finds the Z-factor for the reduced state (ppr, tpr) with the chosen
// strategy. Identical inputs produce bit-identical Results.
func Solve(ppr, tpr float64, strategy Strategy, opts Options) (Result, error) {
	if err := (dak.State{Ppr: ppr, Tpr: tpr}).Validate(); err != nil {
		return Result{}, err
	}
	opts, err := opts.withDefaults(strategy)
	if err != nil {
		return Result{}, err
	}
	switch strategy {
	case Bisection:
		return solveBisection(ppr, tpr, opts)
	case Newton:
		return solveNewton(ppr, tpr, opts)
	default:
		return Result{}, fmt.Errorf("solve: unknown strategy %d", strategy)
	}
}
