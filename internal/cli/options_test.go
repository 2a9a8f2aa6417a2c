// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"zfac/internal/clibase"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestReducedStateOK(t *testing.T) {
	o := mustParse(t, "--ppr", "2.958", "--tpr", "1.867")
	if o.Ppr != 2.958 || o.Tpr != 1.867 || o.Pressure != "" {
		t.Errorf("want reduced state only, got %+v", o)
	}
	if o.Method != "bisect" || o.Bracket != DefaultBracket || !o.Header {
		t.Errorf("bad defaults %+v", o.Common)
	}
}

func TestZeroPprOK(t *testing.T) {
	o := mustParse(t, "--ppr", "0", "--tpr", "1.5")
	if o.Ppr != 0 {
		t.Errorf("Ppr 0 is a legal state, got %+v", o)
	}
}

func TestFieldUnitsOK(t *testing.T) {
	o := mustParse(t,
		"--pressure", "3250psia",
		"--temperature", "213F",
		"--gravity", "0.666",
	)
	if o.Pressure != "3250psia" || o.Gravity != 0.666 || o.Ppr != -1 {
		t.Errorf("bad field-unit parse %+v", o)
	}
}

func TestErrorMutualExclusion(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--ppr", "2.958", "--tpr", "1.867", "--pressure", "3250psia",
	})
	if err == nil || !strings.Contains(err.Error(), "conflict") {
		t.Fatalf("expected mutual-exclusion error, got %v", err)
	}
}

func TestErrorMissingTpr(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--ppr", "2.958"})
	if err == nil || !strings.Contains(err.Error(), "together") {
		t.Fatalf("expected paired-flag error, got %v", err)
	}
}

func TestErrorIncompleteFieldUnits(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--pressure", "3250psia", "--temperature", "213F"})
	if err == nil || !strings.Contains(err.Error(), "--gravity") {
		t.Fatalf("expected gravity-missing error, got %v", err)
	}
}

func TestErrorNoState(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--method", "newton"})
	if err == nil || !strings.Contains(err.Error(), "provide") {
		t.Fatalf("expected no-state error, got %v", err)
	}
}

func TestErrorBadMethod(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--ppr", "1", "--tpr", "1.5", "--method", "brent"})
	if err == nil || !strings.Contains(err.Error(), "--method") {
		t.Fatalf("expected method error, got %v", err)
	}
}

func TestHelpSentinel(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestExamplesSentinel(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--examples"})
	if !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o := mustParse(t, "-v")
	if !o.Version {
		t.Fatalf("want Version set, got %+v", o)
	}
}

func TestNoHeaderFlag(t *testing.T) {
	o := mustParse(t, "--ppr", "1", "--tpr", "1.5", "--no-header")
	if o.Header {
		t.Errorf("--no-header should clear Header")
	}
}
