// core/dak/state.go
package dak

import (
	"errors"
	"fmt"
	"math"
)

// State is an immutable pseudo-reduced state.
type State struct {
	Ppr float64 // pseudo-reduced pressure, P/Ppc
	Tpr float64 // pseudo-reduced temperature, T/Tpc
}

// Validate checks the hard invariants: Tpr is a positive divisor and Ppr is
// non-negative (Ppr = 0 is legal and gives z = 1 exactly). Range membership
// is advisory and checked separately by InRange.
func (s State) Validate() error {
	if math.IsNaN(s.Ppr) || math.IsInf(s.Ppr, 0) || s.Ppr < 0 {
		return fmt.Errorf("dak: Ppr must be finite and ≥ 0, got %g", s.Ppr)
	}
	if math.IsNaN(s.Tpr) || math.IsInf(s.Tpr, 0) {
		return fmt.Errorf("dak: Tpr must be finite, got %g", s.Tpr)
	}
	if s.Tpr <= 0 {
		return errors.New("dak: Tpr must be > 0")
	}
	return nil
}

// InRange reports whether the state lies inside the published fit range
// (0.2 ≤ Ppr ≤ 30, 1.0 ≤ Tpr ≤ 3.0). The model never clamps; callers decide
// whether to warn or reject.
func (s State) InRange() bool {
	return s.Ppr >= MinPpr && s.Ppr <= MaxPpr && s.Tpr >= MinTpr && s.Tpr <= MaxTpr
}
