// internal/output/common.go
package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const (
	TSVHeader         = "ppr\ttpr\tmethod\tz\titerations\tconvergence\tstatus"
	TSVHeaderPressure = "pressure_atm\t" + TSVHeader
)
