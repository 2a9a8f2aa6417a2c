// core/units/units.go

// Package units holds conversion constants and the unit-suffixed flag
// parsers shared by the command-line front ends.
package units

import (
	"fmt"
	"strings"
)

// Both factors come from exact SI definitions:
// 1 atm = 101325 Pa, 1 psi = 6894.757293168 Pa.
const (
	PsiaPerAtm = 101325.0 / 6894.757293168
	KPaPerAtm  = 101.325
)

func AtmToPsia(atm float64) float64 { return atm * PsiaPerAtm }

func PsiaToAtm(psia float64) float64 { return psia / PsiaPerAtm }

func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

func CelsiusToKelvin(c float64) float64 { return c + 273.15 }

func FahrenheitToKelvin(f float64) float64 { return CelsiusToKelvin(FahrenheitToCelsius(f)) }

// ParsePressure parses "3250psia", "221.2atm", "1519.9kPa" → atm.
// The unit suffix is required.
func ParsePressure(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	unit := ""
	val := 0.0
	_, err := fmt.Sscanf(s, "%f%s", &val, &unit)
	if err != nil {
		return 0, fmt.Errorf("invalid pressure %q: %w", s, err)
	}
	switch unit {
	case "atm":
		return val, nil
	case "psia", "psi":
		return PsiaToAtm(val), nil
	case "kpa":
		return val / KPaPerAtm, nil
	default:
		return 0, fmt.Errorf("unknown unit %q in %q", unit, s)
	}
}

// ParseTemperature parses "213F", "100.6C", "373.7K" → kelvin.
// The unit suffix is required.
func ParseTemperature(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	unit := ""
	val := 0.0
	_, err := fmt.Sscanf(s, "%f%s", &val, &unit)
	if err != nil {
		return 0, fmt.Errorf("invalid temperature %q: %w", s, err)
	}
	switch unit {
	case "k":
		return val, nil
	case "c":
		return CelsiusToKelvin(val), nil
	case "f":
		return FahrenheitToKelvin(val), nil
	default:
		return 0, fmt.Errorf("unknown unit %q in %q", unit, s)
	}
}
