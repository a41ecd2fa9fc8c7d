// Command replay runs one or more JSON fixtures through a fresh engine
// and reports per-generation and invariant-check outcomes. Exits nonzero
// if any fixture fails.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kurohane/phenomenal-oracle/internal/replay"
)

// #region main

func main() {
	verbose := flag.Bool("v", false, "print every generation, not just failures")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: replay [-v] fixture.json [fixture.json ...]")
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		f, err := replay.LoadFixture(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}

		result, err := replay.Run(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}

		status := "PASS"
		if !result.Passed {
			status = "FAIL"
			failed++
		}
		fmt.Printf("%s %s  (%s)\n", status, path, f.Description)

		for _, c := range result.Cycles {
			if c.Pass && !*verbose {
				continue
			}
			mark := "ok"
			if !c.Pass {
				mark = "FAIL: " + c.Reason
			}
			fmt.Printf("  gen=%d phi=%.4f level=%s  %s\n", c.Generation, c.Phi, c.Level, mark)
		}
		if !result.CheckResult.Passed {
			fmt.Printf("  invariants: %s\n", result.CheckResult.Reason)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// #endregion main
