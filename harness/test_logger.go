package harness

// TestLogger receives the report events produced during a run, in the order
// they occur, always from the goroutine driving the run. How they are
// rendered is entirely up to the implementation; see ConsoleTestLogger for
// the standard one.
type TestLogger interface {
	// RunStarted begins a run. Every run produces exactly one RunStarted
	// and one RunFinished, with everything else in between.
	RunStarted(runID string)
	// UnknownTestName reports a requested name that has no registered
	// test. It is emitted once per unknown name, before any test runs.
	UnknownTestName(name string)
	// NoTestsToRun reports that no requested name resolved to a test, so
	// the data stream was not scanned at all.
	NoTestsToRun()
	// TestStarted begins a section of cases for the named test.
	TestStarted(name string)
	CasePassed(name string, c *Case)
	CaseFailed(name string, c *Case)
	// TestAborted reports that the named test's remaining cases were
	// skipped because its body returned AbortTest.
	TestAborted(name string)
	// AllTestsAborted reports that the run is ending early because a body
	// returned AbortAll.
	AllTestsAborted()
	// TestFinished closes a section, with the section's case totals and
	// whatever the body wrote to its debug log.
	TestFinished(name string, casesApplied, casesFailed int, debugOutput CapturedOutput)
	// RunFinished closes the run with its accumulated results.
	RunFinished(results Results)
}

type nullTestLogger struct{}

func (n nullTestLogger) RunStarted(string)                             {}
func (n nullTestLogger) UnknownTestName(string)                        {}
func (n nullTestLogger) NoTestsToRun()                                 {}
func (n nullTestLogger) TestStarted(string)                            {}
func (n nullTestLogger) CasePassed(string, *Case)                      {}
func (n nullTestLogger) CaseFailed(string, *Case)                      {}
func (n nullTestLogger) TestAborted(string)                            {}
func (n nullTestLogger) AllTestsAborted()                              {}
func (n nullTestLogger) TestFinished(string, int, int, CapturedOutput) {}
func (n nullTestLogger) RunFinished(Results)                           {}
