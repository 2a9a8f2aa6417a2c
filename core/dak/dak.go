// core/dak/dak.go
//
// Dranchuk–Abou-Kassem (DAK) compressibility model for natural gas.
// The model expresses the Z-factor implicitly: given a pseudo-reduced state
// (Ppr, Tpr), the compressibility z satisfies z = zn(z), where zn is an
// eleven-constant fit of the Standing-Katz chart evaluated at the reduced
// density Rr = 0.27·Ppr/(Tpr·z). This package provides the pieces of that
// fixed-point form; root finding lives in core/solver.
//
// All functions are pure float64 math: no clamping, no error returns. NaN
// propagates (e.g. from a degenerate Tpr overflowing the 1/Tpr powers) and
// is detected by the solver, which reports it as a numeric fault.
package dak

import "math"

// Coeffs is the temperature-dependent part of the DAK coefficient set,
// computed once per solve. The density-dependent term C3 is recomputed for
// every residual evaluation from the current reduced density.
type Coeffs struct {
	C0 float64 // linear-in-Rr group
	C1 float64 // quadratic group
	C2 float64 // quintic group
}

// Coefficients evaluates the Tpr-dependent groups with x = 1/Tpr:
//
//	C0 = A1 + A2·x + A3·x³ + A4·x⁴ + A5·x⁵
//	C1 = A6 + t,  C2 = A9·t,  t = A7·x + A8·x²
//
// Continuous in Tpr over the fit range; deterministic for equal inputs.
func Coefficients(tpr float64) Coeffs {
	x := 1 / tpr
	x2 := x * x
	x3 := x2 * x
	t := a7*x + a8*x2
	return Coeffs{
		C0: a1 + a2*x + a3*x3 + a4*x3*x + a5*x3*x2,
		C1: a6 + t,
		C2: a9 * t,
	}
}

// ReducedDensity returns Rr = 0.27·Ppr/(Tpr·z). z must be nonzero; z = 0
// yields ±Inf per IEEE-754 and poisons downstream terms.
func ReducedDensity(ppr, tpr, z float64) float64 {
	return densityCoef * ppr / (tpr * z)
}

// C3 is the exponential density term
//
//	C3 = A10·(1 + u)·Rr²/Tpr³·exp(−u),  u = A11·Rr²
//
// evaluated in a fixed order (u, exp, product) so results are
// bit-reproducible.
func C3(rr, tpr float64) float64 {
	rr2 := rr * rr
	u := a11 * rr2
	return a10 * (1 + u) * rr2 / (tpr * tpr * tpr) * math.Exp(-u)
}

// FixedPoint returns zn = 1 + C0·Rr + C1·Rr² − C2·Rr⁵ + C3, the value the
// compressibility must equal at the root.
func (c Coeffs) FixedPoint(c3, rr float64) float64 {
	rr2 := rr * rr
	rr5 := rr2 * rr2 * rr
	return 1 + c.C0*rr + c.C1*rr2 - c.C2*rr5 + c3
}

// Residual returns f(z) = z − 1 − C0·Rr − C1·Rr² + C2·Rr⁵ − C3, identically
// z − FixedPoint(c3, rr). A root of f is a Z-factor for the state that
// produced rr and c3.
func (c Coeffs) Residual(c3, rr, z float64) float64 {
	rr2 := rr * rr
	rr5 := rr2 * rr2 * rr
	return z - 1 - c.C0*rr - c.C1*rr2 + c.C2*rr5 - c3
}

// Derivative is the Newton iteration derivative of the residual with respect
// to z, written against the fixed-point value zn of the current iterate:
//
//	dfdz = 1 + (C0·Rr + 2·C1·Rr² + 5·C2·Rr⁵)/zn
//	         + 2·A10·Rr²/Tpr³·(1 + u − u²·exp(−u))/zn
//
// This is the historical form carried by the correlation literature, kept
// literally: it scales the Newton step, and the step vanishes exactly where
// the residual does, so the iteration still converges to the same root.
func (c Coeffs) Derivative(rr, tpr, zn float64) float64 {
	rr2 := rr * rr
	rr5 := rr2 * rr2 * rr
	u := a11 * rr2
	return 1 + (c.C0*rr+2*c.C1*rr2+5*c.C2*rr5)/zn +
		2*a10*rr2/(tpr*tpr*tpr)*(1+u-u*u*math.Exp(-u))/zn
}
