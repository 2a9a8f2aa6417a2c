// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"zfac/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage examples, state blocks, etc.).
func UsageCommon(fs *flag.FlagSet, name, oneLiner string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – %s\n\n", name, oneLiner)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		// Tool-specific additions (usage examples, extra sections)
		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nSolver:")
		fmt.Fprintf(out, "      --method string       Root solver: bisect | newton [%s]\n", def("method"))
		fmt.Fprintf(out, "      --max-iter int        Iteration cap (0 = method default) [%s]\n", def("max-iter"))
		fmt.Fprintf(out, "      --tolerance float     Convergence tolerance (0 = method default) [%s]\n", def("tolerance"))
		fmt.Fprintf(out, "      --bracket lo:hi       Bisection bracket [%s]\n", def("bracket"))
		fmt.Fprintf(out, "      --guess float         Newton initial guess [%s]\n", def("guess"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string       Output: text | json [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header           Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet               Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version             Print version and exit")
		fmt.Fprintln(out, "  -h, --help                Show this help and exit")
		fmt.Fprintln(out, "      --examples            Show quickstart examples and exit")
	}
}
