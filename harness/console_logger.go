package harness

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	headColor = color.New(color.Bold)
)

// ConsoleTestLogger renders report events as a line-oriented console log,
// ending each run with a summary table.
type ConsoleTestLogger struct {
	// Output is where the report goes; os.Stdout if nil.
	Output io.Writer
	// DebugOutputOnFailure and DebugOutputOnSuccess control whether the
	// debug output captured from test bodies is shown when a test ends.
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c *ConsoleTestLogger) RunStarted(runID string) {
	headColor.Fprintf(c.out(), "Running test suite (run %s)\n\n", shortRunID(runID))
}

func (c *ConsoleTestLogger) UnknownTestName(name string) {
	warnColor.Fprintf(c.out(), "%q is not a registered test\n", name)
}

func (c *ConsoleTestLogger) NoTestsToRun() {
	failColor.Fprintf(c.out(), "*** No valid test names were provided! ***\n")
}

func (c *ConsoleTestLogger) TestStarted(name string) {
	fmt.Fprintf(c.out(), "[%s]\n", name)
}

func (c *ConsoleTestLogger) CasePassed(name string, testCase *Case) {}

func (c *ConsoleTestLogger) CaseFailed(name string, testCase *Case) {
	failColor.Fprintf(c.out(), "  FAILED: %s\n", describeTest(name, testCase))
}

func (c *ConsoleTestLogger) TestAborted(name string) {
	warnColor.Fprintf(c.out(), "  *** The remaining test cases of %q have been skipped. ***\n", name)
}

func (c *ConsoleTestLogger) AllTestsAborted() {
	failColor.Fprintf(c.out(), "*** Testing has been aborted! ***\n")
}

func (c *ConsoleTestLogger) TestFinished(name string, casesApplied, casesFailed int, debugOutput CapturedOutput) {
	w := c.out()
	switch {
	case casesApplied == 0:
		warnColor.Fprintf(w, "  no test cases were applied\n")
	case casesFailed == 0:
		passColor.Fprintf(w, "  all %d test cases passed\n", casesApplied)
	default:
		failColor.Fprintf(w, "  %d of %d test cases failed\n", casesFailed, casesApplied)
	}
	if len(debugOutput) > 0 &&
		((casesFailed > 0 && c.DebugOutputOnFailure) || (casesFailed == 0 && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(w, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) RunFinished(results Results) {
	w := c.out()
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Test Results (run %s)", shortRunID(results.RunID)))
	t.AppendHeader(table.Row{"Test", "Cases", "Failed", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Test", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Cases", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
	})
	for _, tr := range results.Tests {
		t.AppendRow(table.Row{tr.Name, tr.CasesApplied, tr.CasesFailed, sectionStatus(tr)})
	}
	if results.OK() {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}
	t.AppendFooter(table.Row{"TOTAL", results.CasesApplied, results.CasesFailed, runStatus(results)})
	t.Render()

	if results.Err != nil {
		failColor.Fprintf(w, "\nThe test data stream failed before its end: %s\n", results.Err)
	}
}

func sectionStatus(tr TestResult) string {
	switch {
	case tr.Aborted:
		return "aborted"
	case tr.CasesFailed > 0:
		return "fail"
	default:
		return "pass"
	}
}

func runStatus(results Results) string {
	switch {
	case results.Err != nil:
		return "ERROR"
	case results.Aborted:
		return "ABORTED"
	case results.CasesFailed > 0:
		return "FAIL"
	default:
		return "PASS"
	}
}

func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
