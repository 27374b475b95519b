package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Count returns the number of tests that ran to completion, the number that were skipped, and
// the number that failed.
func (r Results) Count() (passed, skipped, failed int) {
	failedIDs := make(map[string]bool, len(r.Failures))
	for _, f := range r.Failures {
		failedIDs[f.TestID.String()] = true
	}
	for _, t := range r.Tests {
		switch {
		case t.Skipped:
			skipped++
		case failedIDs[t.TestID.String()]:
			failed++
		default:
			passed++
		}
	}
	return
}

// PrintResults writes a summary of the test run, listing every failed test.
func PrintResults(out io.Writer, results Results) {
	passed, skipped, failed := results.Count()
	if results.OK() {
		fmt.Fprintln(out, color.GreenString("All tests passed"))
	} else {
		fmt.Fprintln(out, color.RedString("FAILED TESTS:"))
		for _, f := range results.Failures {
			fmt.Fprintf(out, "  * %s\n", f.TestID)
		}
	}
	fmt.Fprintf(out, "%d passed, %d skipped, %d failed\n", passed, skipped, failed)
}

// TestID identifies a test by the names of the test and all of its parents.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Plus returns the ID of a subtest of t.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}
