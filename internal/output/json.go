// internal/output/json.go
package output

import (
	"io"

	"zfac/internal/jsonutil"
	"zfac/pkg/api"
)

// ToAPIResult converts a row to the stable wire schema (v1).
func ToAPIResult(r Row) api.ResultV1 {
	return api.ResultV1{
		PressureAtm: r.PressureAtm,
		Ppr:         r.Ppr,
		Tpr:         r.Tpr,
		Method:      r.Method.String(),
		Z:           jsonutil.FloatPtr(r.Result.Z),
		Iterations:  r.Result.Iterations,
		Convergence: jsonutil.FloatPtr(r.Result.Convergence),
		Status:      r.Result.Status.String(),
	}
}

func toAPIResults(rows []Row) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPIResult(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, rows []Row) error {
	return jsonutil.EncodePretty(w, toAPIResults(rows))
}
