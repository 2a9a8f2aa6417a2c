// core/solver/bisect_test.go
package solver

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// The narrowing rule keys on sign agreement with the current endpoints, so a
// bracket with the positive residual on the left converges just the same.
func TestBisectReversedBracket(t *testing.T) {
	f := func(z float64) float64 { return 1 - z }
	res, err := bisect(f, 0.6, 1.3, 100, 2e-6)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusOK {
		t.Fatalf("status = %v", res.Status)
	}
	if !scalar.EqualWithinAbs(res.Z, 1.0, 2e-6) {
		t.Fatalf("z = %.10f, want 1 ± 2e-6", res.Z)
	}
}

func TestBisectExactMidpointRoot(t *testing.T) {
	// [0.5, 1.5] places the first midpoint exactly on the root.
	f := func(z float64) float64 { return z - 1 }
	res, err := bisect(f, 0.5, 1.5, 100, 2e-6)
	if err != nil {
		t.Fatal(err)
	}
	if res.Z != 1.0 || res.Iterations != 1 || res.Status != StatusOK {
		t.Fatalf("got %+v, want exact hit on first midpoint", res)
	}
}

func TestBisectEndpointRoot(t *testing.T) {
	f := func(z float64) float64 { return z - 1 }
	res, err := bisect(f, 0.7, 1.0, 100, 2e-6)
	if err != nil {
		t.Fatal(err)
	}
	if res.Z != 1.0 || res.Iterations != 0 || res.Convergence != 0 {
		t.Fatalf("got %+v, want upper endpoint accepted without iterating", res)
	}
}

func TestBisectNaNEndpoint(t *testing.T) {
	f := func(z float64) float64 { return math.NaN() }
	res, err := bisect(f, 0.6, 1.3, 100, 2e-6)
	if !errors.Is(err, ErrNumericFault) {
		t.Fatalf("err = %v, want ErrNumericFault", err)
	}
	if res.Status != StatusNumericFault || !math.IsNaN(res.Z) {
		t.Fatalf("got %+v", res)
	}
}

func TestBisectNaNInterior(t *testing.T) {
	// Endpoints are fine, every interior evaluation faults.
	f := func(z float64) float64 {
		switch z {
		case 0.6:
			return -1
		case 1.3:
			return 1
		}
		return math.NaN()
	}
	res, err := bisect(f, 0.6, 1.3, 100, 2e-6)
	if !errors.Is(err, ErrNumericFault) {
		t.Fatalf("err = %v, want ErrNumericFault", err)
	}
	if !math.IsNaN(res.Z) || !math.IsNaN(res.Convergence) {
		t.Fatalf("got %+v, want NaN result", res)
	}
}
