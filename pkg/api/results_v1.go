// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON schema for solved states.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Z and Convergence are pointers because a faulted solve carries no usable
// value and JSON has no encoding for NaN.
type ResultV1 struct {
	PressureAtm *float64 `json:"pressure_atm,omitempty"`
	Ppr         float64  `json:"ppr"`
	Tpr         float64  `json:"tpr"`
	Method      string   `json:"method"` // "bisect" | "newton"
	Z           *float64 `json:"z"`
	Iterations  int      `json:"iterations"`
	Convergence *float64 `json:"convergence"`
	Status      string   `json:"status"`
}
