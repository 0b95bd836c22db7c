package harness

import "fmt"

// Severity is the outcome a test body reports for a single case. Anything
// other than Pass counts the case as failed; the higher severities also
// decide how much of the run is skipped afterward.
type Severity int

const (
	// Pass means the case passed.
	Pass Severity = iota
	// Fail means the case failed, but testing continues normally.
	Fail
	// AbortTest means the case failed and the remaining cases in this
	// test's section must be skipped.
	AbortTest
	// AbortAll means the case failed and no further testing of any kind
	// should happen in this run.
	AbortAll
)

func (s Severity) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case AbortTest:
		return "abort test"
	case AbortAll:
		return "abort all tests"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}
