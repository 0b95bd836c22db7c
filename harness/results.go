package harness

// Results is the accumulated outcome of one run.
type Results struct {
	// RunID uniquely identifies the run.
	RunID string
	// Tests holds one entry per executed section, in stream order. A test
	// whose name marks several sections contributes several entries.
	Tests []TestResult
	// CasesApplied and CasesFailed are totals across the whole run.
	CasesApplied int
	CasesFailed  int
	// Aborted means a test body returned AbortAll and the rest of the
	// stream was never scanned. The totals still cover everything that did
	// run.
	Aborted bool
	// Err is the stream error that cut the scan short, if the scan ended
	// on anything other than end of stream.
	Err error
}

// TestResult is the outcome of one section of cases.
type TestResult struct {
	Name         string
	CasesApplied int
	CasesFailed  int
	// Aborted means the body returned AbortTest or AbortAll partway
	// through the section.
	Aborted bool
}

// OK reports whether the run completed with no failed cases, no abort, and
// no stream error.
func (r Results) OK() bool {
	return r.CasesFailed == 0 && !r.Aborted && r.Err == nil
}
