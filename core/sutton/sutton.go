// core/sutton/sutton.go

// Package sutton maps gas specific gravity to Sutton pseudo-critical
// properties, and absolute conditions to the pseudo-reduced coordinates
// consumed by the Dranchuk-Abou-Kassem correlation.
package sutton

import (
	"fmt"
	"math"

	"zfac-core/dak"
	"zfac-core/units"
)

// Gravity bounds of Sutton's regression (air = 1). Both ends exclusive.
const (
	MinGravity = 0.57
	MaxGravity = 1.68
)

// PseudoCritical returns the pseudo-critical pressure [psia] and
// temperature [K] of a gas with the given specific gravity.
func PseudoCritical(gravity float64) (ppcPsia, tpcK float64, err error) {
	if !(gravity > MinGravity && gravity < MaxGravity) {
		return 0, 0, fmt.Errorf("sutton: specific gravity %g outside (%g, %g)", gravity, MinGravity, MaxGravity)
	}
	ppcPsia = 756.8 - 131.0*gravity - 3.6*gravity*gravity
	tpcK = (169.2 + 349.5*gravity - 74.0*gravity*gravity) * 5 / 9
	return ppcPsia, tpcK, nil
}

// Reduced converts absolute pressure [atm] and temperature [K] to the
// pseudo-reduced state for a gas of the given specific gravity.
func Reduced(pressureAtm, temperatureK, gravity float64) (dak.State, error) {
	if math.IsNaN(pressureAtm) || math.IsInf(pressureAtm, 0) || pressureAtm < 0 {
		return dak.State{}, fmt.Errorf("sutton: pressure %g atm must be finite and ≥ 0", pressureAtm)
	}
	if math.IsNaN(temperatureK) || math.IsInf(temperatureK, 0) || temperatureK <= 0 {
		return dak.State{}, fmt.Errorf("sutton: temperature %g K must be finite and > 0", temperatureK)
	}
	ppc, tpc, err := PseudoCritical(gravity)
	if err != nil {
		return dak.State{}, err
	}
	return dak.State{
		Ppr: units.AtmToPsia(pressureAtm) / ppc,
		Tpr: temperatureK / tpc,
	}, nil
}
