// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"math"
)

// WriteText prints one TSV line per row. withPressure prepends the
// pressure_atm column; a row without a pressure prints NaN there.
func WriteText(w io.Writer, rows []Row, header, withPressure bool) error {
	if header {
		h := TSVHeader
		if withPressure {
			h = TSVHeaderPressure
		}
		if _, err := fmt.Fprintln(w, h); err != nil {
			return err
		}
	}
	for _, r := range rows {
		var err error
		if withPressure {
			_, err = fmt.Fprintf(w, "%.6g\t%s\n", pressureOf(r), FormatRowTSV(r))
		} else {
			_, err = fmt.Fprintln(w, FormatRowTSV(r))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func pressureOf(r Row) float64 {
	if r.PressureAtm == nil {
		return math.NaN()
	}
	return *r.PressureAtm
}
