package selftest

import "github.com/casefile/casefile/harness"

// severityProtocol drives the engine's escalation handling straight from
// the data. Each case is "<severity> <shouldApply>": the body returns the
// named severity, and shouldApply marks cases that are only reachable if an
// earlier abort was ignored. The failures this produces are intentional;
// the sample data keeps the escalating cases commented out so that the
// default run stays green.
func severityProtocol(t *harness.T) harness.Severity {
	var severity string
	var shouldApply bool
	if err := t.Case().Scan(&severity, &shouldApply); err != nil {
		t.Debug("could not parse case %q: %s", t.Case().Text(), err)
		return harness.Fail
	}
	if !shouldApply {
		t.Debug("case %d should have been skipped by an earlier abort", t.Case().Number())
		return harness.Fail
	}
	switch severity {
	case "pass":
		return harness.Pass
	case "fail":
		t.Debug("case %d fails on purpose", t.Case().Number())
		return harness.Fail
	case "abortThisTest":
		t.Debug("case %d aborts the rest of this test on purpose", t.Case().Number())
		return harness.AbortTest
	case "abortAllTests":
		t.Debug("case %d aborts all testing on purpose", t.Case().Number())
		return harness.AbortAll
	default:
		t.Debug("unknown severity %q in case %d", severity, t.Case().Number())
		return harness.Fail
	}
}
