// core/solver/bisect.go
package solver

import (
	"fmt"
	"math"

	"zfac-core/dak"
)

func solveBisection(ppr, tpr float64, opts Options) (Result, error) {
	c := dak.Coefficients(tpr)
	f := func(z float64) float64 {
		rr := dak.ReducedDensity(ppr, tpr, z)
		return c.Residual(dak.C3(rr, tpr), rr, z)
	}
	return bisect(f, opts.BracketLo, opts.BracketHi, opts.MaxIter, opts.Tolerance)
}

// bisect narrows [lo, hi] around a sign change of f. Convergence is measured
// on the bracket width; the reported Z is the midpoint of the final bracket.
// The endpoint replaced each step is the one whose residual sign matches the
// midpoint's, so the bracket may be ordered either way around the root.
func bisect(f func(z float64) float64, lo, hi float64, maxIter int, tol float64) (Result, error) {
	fa, fb := f(lo), f(hi)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return Result{Z: math.NaN(), Convergence: math.NaN(), Status: StatusNumericFault},
			fmt.Errorf("bisect: residual is NaN at a bracket endpoint of [%g, %g]: %w", lo, hi, ErrNumericFault)
	}
	if fa == 0 {
		return Result{Z: lo, Status: StatusOK}, nil
	}
	if fb == 0 {
		return Result{Z: hi, Status: StatusOK}, nil
	}
	if fa*fb > 0 {
		// No midpoint was ever computed, so there is no iterate to report.
		return Result{Z: math.NaN(), Convergence: math.Abs(hi - lo), Status: StatusBracketInvalid},
			fmt.Errorf("bisect: residual has the same sign at both ends of [%g, %g]: %w", lo, hi, ErrBracketInvalid)
	}

	var zn float64
	for i := 0; i < maxIter; i++ {
		zn = (lo + hi) / 2
		conv := math.Abs(hi - lo)
		if conv <= tol {
			return Result{Z: zn, Iterations: i, Convergence: conv, Status: StatusOK}, nil
		}
		fz := f(zn)
		if math.IsNaN(fz) {
			return Result{Z: math.NaN(), Iterations: i, Convergence: math.NaN(), Status: StatusNumericFault},
				fmt.Errorf("bisect: residual is NaN at z=%g: %w", zn, ErrNumericFault)
		}
		if fz == 0 {
			return Result{Z: zn, Iterations: i + 1, Convergence: conv, Status: StatusOK}, nil
		}
		if (fz > 0) == (fb > 0) {
			hi, fb = zn, fz
		} else {
			lo = zn
		}
	}
	return Result{Z: zn, Iterations: maxIter, Convergence: math.Abs(hi - lo), Status: StatusMaxIterations},
		fmt.Errorf("bisect: no convergence within %d iterations: %w", maxIter, ErrMaxIterations)
}
