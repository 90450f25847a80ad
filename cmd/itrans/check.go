package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/itrans/golden"
)

// check runs a golden file and prints one status line per case, followed by
// a summary. Mismatches are broken down into code points if requested.
func check(out io.Writer, tr golden.Translator, src io.Reader, breakdown bool) (golden.Report, error) {
	rep, err := golden.Run(tr, golden.NewReader(src))
	if err != nil {
		return rep, err
	}
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "%-20s %-20s %-20s %s\n", "Input", "Expected", "Got", "Status")
	fmt.Fprintln(out, rule)
	for _, r := range rep.Results {
		status := "✓"
		if !r.OK() {
			status = "✗"
		}
		fmt.Fprintf(out, "%-20s %-20s %-20s %s\n", r.Input, r.Want, r.Got, status)
		if r.OK() || !breakdown {
			continue
		}
		fmt.Fprintln(out, "  expected:")
		if err := golden.WriteBreakdown(out, r.Want); err != nil {
			return rep, err
		}
		fmt.Fprintln(out, "  got:")
		if err := golden.WriteBreakdown(out, r.Got); err != nil {
			return rep, err
		}
	}
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Passed: %d, Failed: %d, Total: %d\n", rep.Passed, rep.Failed, len(rep.Results))
	return rep, nil
}
