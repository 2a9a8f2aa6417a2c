// internal/output/rows.go
package output

import (
	"fmt"

	"zfac-core/solver"
)

// Row pairs one solved state with the conditions that produced it.
// PressureAtm is set when the state came from field units (sweep points,
// --pressure mode); nil means the caller worked in reduced coordinates.
type Row struct {
	PressureAtm *float64
	Ppr         float64
	Tpr         float64
	Method      solver.Strategy
	Result      solver.Result
}

// FormatRowTSV returns the 7 base columns (no trailing newline).
// A faulted solve prints NaN in the z and convergence columns.
func FormatRowTSV(r Row) string {
	return fmt.Sprintf("%.6g\t%.6g\t%s\t%.6f\t%d\t%.3e\t%s",
		r.Ppr, r.Tpr, r.Method,
		r.Result.Z, r.Result.Iterations, r.Result.Convergence,
		r.Result.Status,
	)
}
