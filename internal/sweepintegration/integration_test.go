// internal/sweepintegration/integration_test.go
package sweepintegration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"

	"zfac/internal/sweepapp"
	"zfac/pkg/api"
)

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := sweepapp.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestDefaultSweepShape(t *testing.T) {
	code, out, errS := run(t)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+50 {
		t.Fatalf("got %d lines, want header + 50 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "pressure_atm\t") {
		t.Fatalf("header = %q", lines[0])
	}

	// The grid starts at vacuum, where the gas is exactly ideal.
	first := strings.Split(lines[1], "\t")
	if first[0] != "0" {
		t.Errorf("first pressure = %q, want 0", first[0])
	}
	z, err := strconv.ParseFloat(first[4], 64)
	if err != nil || math.Abs(z-1) > 1e-5 {
		t.Errorf("z at 0 atm = %q, want 1 (err %v)", first[4], err)
	}
	if !strings.HasSuffix(lines[1], "\tok") {
		t.Errorf("first row should be ok: %q", lines[1])
	}

	last := strings.Split(lines[len(lines)-1], "\t")
	if last[0] != "500" {
		t.Errorf("last pressure = %q, want 500", last[0])
	}
}

func TestSerialMatchesParallel(t *testing.T) {
	sweep := func(threads string) string {
		code, out, errS := run(t, "--points", "64", "--threads", threads, "-o", "json")
		if code != 0 {
			t.Fatalf("threads=%s exit %d err %s", threads, code, errS)
		}
		return out
	}

	serial := sweep("1")
	parallel := sweep("8")
	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel: %s", serial, parallel)
	}
}

func TestSweepJSONRoundTrip(t *testing.T) {
	code, out, errS := run(t, "--points", "5", "-o", "json")
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errS)
	}
	var got []api.ResultV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 5 {
		t.Fatalf("got %d results, want 5", len(got))
	}
	for i, r := range got {
		if r.PressureAtm == nil {
			t.Fatalf("row %d missing pressure", i)
		}
		if i > 0 && *r.PressureAtm <= *got[i-1].PressureAtm {
			t.Errorf("pressures out of order at %d", i)
		}
		if r.Status != "ok" || r.Z == nil {
			t.Errorf("row %d not ok: %+v", i, r)
		}
		if r.Method != "bisect" {
			t.Errorf("row %d method %q", i, r.Method)
		}
	}
	if p := *got[4].PressureAtm; p != 500 {
		t.Errorf("last pressure = %g, want 500", p)
	}
}

func TestFailedPointsWarnButExitZero(t *testing.T) {
	// At 0C / sg 0.9 the roots between 400 and 500 atm sit well above 1,
	// so this bracket is sign-consistent at both ends for every point.
	code, out, errS := run(t,
		"--from", "400", "--to", "500", "--points", "3",
		"--bracket", "0.6:1.0",
	)
	if code != 0 {
		t.Fatalf("exit %d: failed points are non-fatal", code)
	}
	if !strings.Contains(errS, "WARN:") || !strings.Contains(errS, "3 of 3") {
		t.Errorf("stderr %q should count the failed points", errS)
	}
	if strings.Count(out, "bracket-invalid") != 3 {
		t.Errorf("rows should carry their status:\n%s", out)
	}
}

func TestQuietSuppressesSummary(t *testing.T) {
	code, _, errS := run(t,
		"--from", "400", "--to", "500", "--points", "3",
		"--bracket", "0.6:1.0", "--quiet",
	)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if errS != "" {
		t.Errorf("stderr should be empty under --quiet, got %q", errS)
	}
}

func TestCancelledContextExit130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := sweepapp.RunContext(ctx, []string{"--points", "500"}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}

func TestGridValidationExit2(t *testing.T) {
	code, out, errS := run(t, "--points", "1")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errS, "--points") {
		t.Errorf("stderr %q", errS)
	}
	if !strings.Contains(out, "Usage") {
		t.Errorf("usage should follow a validation error")
	}
}

func TestBadGravityExit2(t *testing.T) {
	code, _, errS := run(t, "--gravity", "0.2")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errS, "gravity") {
		t.Errorf("stderr %q", errS)
	}
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "zfac-sweep version ") {
		t.Fatalf("exit %d out %q", code, out)
	}
}

func TestExamplesFlag(t *testing.T) {
	code, out, _ := run(t, "--examples")
	if code != 0 || !strings.Contains(out, "quickstart") {
		t.Fatalf("exit %d out %q", code, out)
	}
}
