// core/dak/params.go
package dak

// Dranchuk & Abou-Kassem (1975) equation-of-state constants, fitted to the
// Standing-Katz chart. Conventional numbering A1..A11; kept in one place so
// no formula carries magic numbers inline.
const (
	a1  = 0.3265
	a2  = -1.0700
	a3  = -0.5339
	a4  = 0.01569
	a5  = -0.05165
	a6  = 0.5475
	a7  = -0.7361
	a8  = 0.1844
	a9  = 0.1056
	a10 = 0.6134
	a11 = 0.7210
)

// densityCoef is the 0.27 factor relating reduced density to Ppr/(Tpr·z)
// at the pseudo-reduced critical point.
const densityCoef = 0.27

// Published fit range of the correlation. Advisory: nothing in this package
// clamps to it, callers decide how to treat out-of-range states.
const (
	MinPpr = 0.2
	MaxPpr = 30.0
	MinTpr = 1.0
	MaxTpr = 3.0
)
