// internal/sweepcli/options_test.go
package sweepcli

import (
	"flag"
	"strings"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestDefaultsRunWithoutFlags(t *testing.T) {
	o, err := ParseArgs(newFS(), nil)
	if err != nil {
		t.Fatalf("empty argv must parse: %v", err)
	}
	if o.From != 0 || o.To != 500 || o.Points != 50 {
		t.Errorf("bad grid defaults %+v", o)
	}
	if o.Temperature != "0C" || o.Gravity != 0.9 {
		t.Errorf("bad condition defaults %+v", o)
	}
	if o.Method != "bisect" || o.Bracket != DefaultBracket {
		t.Errorf("bad solver defaults %+v", o.Common)
	}
}

func TestCustomGrid(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{
		"--from", "50", "--to", "300", "--points", "11",
		"--temperature", "150F", "--gravity", "0.75", "-t", "4",
	})
	if err != nil {
		t.Fatal(err)
	}
	if o.From != 50 || o.To != 300 || o.Points != 11 || o.Threads != 4 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestGridValidation(t *testing.T) {
	cases := []struct {
		name    string
		argv    []string
		wantSub string
	}{
		{"one point", []string{"--points", "1"}, "--points"},
		{"negative start", []string{"--from", "-10"}, "--from"},
		{"empty range", []string{"--from", "100", "--to", "100"}, "--to"},
		{"inverted range", []string{"--from", "200", "--to", "100"}, "--to"},
		{"negative threads", []string{"--threads", "-1"}, "--threads"},
		{"bad bracket", []string{"--bracket", "2:0.2"}, "--bracket"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), tc.argv)
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}
