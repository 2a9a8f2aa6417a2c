// core/solver/newton.go
package solver

import (
	"fmt"
	"math"

	"zfac-core/dak"
)

// derivEpsilon guards the Newton division: below this magnitude the step is
// reported as a distinct fault instead of being taken.
const derivEpsilon = 1e-12

func solveNewton(ppr, tpr float64, opts Options) (Result, error) {
	c := dak.Coefficients(tpr)
	eval := func(z float64) (zn, dfdz float64) {
		rr := dak.ReducedDensity(ppr, tpr, z)
		zn = c.FixedPoint(dak.C3(rr, tpr), rr)
		return zn, c.Derivative(rr, tpr, zn)
	}
	return newton(eval, opts.InitialGuess, opts.MaxIter, opts.Tolerance)
}

// newton iterates z ← z + (zn−z)/dfdz from z0. Every iteration re-evaluates
// the fixed point and its derivative at the current z; convergence is the
// pre-update residual magnitude |z − zn|, so a near-unit derivative cannot
// mask a large remaining residual.
func newton(eval func(z float64) (zn, dfdz float64), z0 float64, maxIter int, tol float64) (Result, error) {
	z := z0
	conv := math.Inf(1)
	for i := 1; i <= maxIter; i++ {
		zn, dfdz := eval(z)
		if math.IsNaN(zn) || math.IsNaN(dfdz) {
			return Result{Z: math.NaN(), Iterations: i, Convergence: math.NaN(), Status: StatusNumericFault},
				fmt.Errorf("newton: evaluation at z=%g is NaN: %w", z, ErrNumericFault)
		}
		conv = math.Abs(z - zn)
		if math.Abs(dfdz) < derivEpsilon {
			return Result{Z: z, Iterations: i, Convergence: conv, Status: StatusDerivativeNearZero},
				fmt.Errorf("newton: |dfdz| = %g at z=%g: %w", math.Abs(dfdz), z, ErrDerivativeNearZero)
		}
		z += (zn - z) / dfdz
		if conv <= tol {
			return Result{Z: z, Iterations: i, Convergence: conv, Status: StatusOK}, nil
		}
	}
	return Result{Z: z, Iterations: maxIter, Convergence: conv, Status: StatusMaxIterations},
		fmt.Errorf("newton: no convergence within %d iterations: %w", maxIter, ErrMaxIterations)
}
