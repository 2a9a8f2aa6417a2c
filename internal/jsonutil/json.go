// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
	"math"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FloatPtr returns &v, or nil when v is NaN. encoding/json rejects NaN, so
// absent numeric values travel as null.
func FloatPtr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
